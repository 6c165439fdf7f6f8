package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/convenehq/convene/domain/model"
	"github.com/convenehq/convene/domain/repository"
)

// In-memory repository family. Non-durable; selected with storage.driver=memory
// for development and tests, never mixed with the Postgres family in one
// running instance.

type InMemoryMeetingRepository struct {
	mu       sync.RWMutex
	meetings map[string]model.Meeting
}

func NewInMemoryMeetingRepository() repository.MeetingRepository {
	return &InMemoryMeetingRepository{
		meetings: make(map[string]model.Meeting),
	}
}

func (r *InMemoryMeetingRepository) Create(ctx context.Context, meeting *model.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.meetings[meeting.ID] = *meeting
	return nil
}

func (r *InMemoryMeetingRepository) GetByID(ctx context.Context, id string) (*model.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meeting, ok := r.meetings[id]
	if !ok {
		return nil, model.ErrMeetingNotFound
	}
	return &meeting, nil
}

func (r *InMemoryMeetingRepository) GetAll(ctx context.Context) ([]*model.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meetings := make([]*model.Meeting, 0, len(r.meetings))
	for id := range r.meetings {
		meeting := r.meetings[id]
		meetings = append(meetings, &meeting)
	}

	// newest first, matching the Postgres family
	sort.Slice(meetings, func(i, j int) bool {
		return meetings[i].CreatedAt.After(meetings[j].CreatedAt)
	})

	return meetings, nil
}

type InMemoryLinkRepository struct {
	mu    sync.RWMutex
	links map[string]model.Link
}

func NewInMemoryLinkRepository() repository.LinkRepository {
	return &InMemoryLinkRepository{
		links: make(map[string]model.Link),
	}
}

func (r *InMemoryLinkRepository) Create(ctx context.Context, link *model.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.links[link.ID] = *link
	return nil
}

func (r *InMemoryLinkRepository) GetByID(ctx context.Context, id string) (*model.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	link, ok := r.links[id]
	if !ok {
		return nil, model.ErrLinkNotFound
	}
	return &link, nil
}

func (r *InMemoryLinkRepository) GetAllByMeetingID(ctx context.Context, meetingID string) ([]*model.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	links := make([]*model.Link, 0)
	for id := range r.links {
		if r.links[id].MeetingID != meetingID {
			continue
		}
		link := r.links[id]
		links = append(links, &link)
	}

	sort.Slice(links, func(i, j int) bool {
		return links[i].CreatedAt.After(links[j].CreatedAt)
	})

	return links, nil
}

type InMemoryAPIKeyRepository struct {
	mu   sync.RWMutex
	keys map[string]model.APIKey
}

func NewInMemoryAPIKeyRepository() *InMemoryAPIKeyRepository {
	return &InMemoryAPIKeyRepository{
		keys: make(map[string]model.APIKey),
	}
}

func (r *InMemoryAPIKeyRepository) Put(apiKey model.APIKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.keys[apiKey.Key] = apiKey
}

func (r *InMemoryAPIKeyRepository) GetByKey(ctx context.Context, key string) (*model.APIKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	apiKey, ok := r.keys[key]
	if !ok {
		return nil, model.ErrAPIKeyNotFound
	}
	return &apiKey, nil
}
