package migration

import (
	"log"

	"github.com/convenehq/convene/domain/model"
	"github.com/convenehq/convene/infrastructure/persistence/database"
	"gorm.io/gorm"
)

func Up1() {
	database := database.GetDb()
	createTables(database)
}

func createTables(database *gorm.DB) {
	tables := []any{}

	tables = addNewTable(database, model.Meeting{}, tables)
	tables = addNewTable(database, model.Link{}, tables)
	tables = addNewTable(database, model.APIKey{}, tables)

	if len(tables) == 0 {
		return
	}

	err := database.Migrator().CreateTable(tables...)
	if err != nil {
		log.Printf("Error migrating: %v\n", err)
	}
	log.Println("Tables Created")
}

func addNewTable(database *gorm.DB, model any, tables []any) []any {
	if !database.Migrator().HasTable(model) {
		tables = append(tables, model)
	}
	return tables
}
