package service_test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/siphore/huddle-api/internal/domain"
	"github.com/siphore/huddle-api/internal/media"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[int64]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]domain.User)}
}

func (r *memUserRepo) List(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pseudo < out[j].Pseudo })
	return out, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (r *memUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.User{}, domain.ErrDuplicate
		}
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *memUserRepo) Update(ctx context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.User{}, domain.ErrNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return domain.User{}, domain.ErrDuplicate
		}
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *memUserRepo) Delete(ctx context.Context, id int64) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	delete(r.users, id)
	return u, nil
}

type memTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]domain.SessionToken
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: make(map[string]domain.SessionToken)}
}

func (r *memTokenRepo) Insert(ctx context.Context, token domain.SessionToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.Token] = token
	return nil
}

func (r *memTokenRepo) Get(ctx context.Context, raw string) (domain.SessionToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[raw]
	if !ok {
		return domain.SessionToken{}, domain.ErrNotFound
	}
	return t, nil
}

func (r *memTokenRepo) Delete(ctx context.Context, raw string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[raw]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tokens, raw)
	return nil
}

type memEventRepo struct {
	mu     sync.Mutex
	events map[int64]domain.Event
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: make(map[int64]domain.Event)}
}

func (r *memEventRepo) List(ctx context.Context) ([]domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *memEventRepo) ListByTheme(ctx context.Context, theme domain.Theme) ([]domain.Event, error) {
	all, _ := r.List(ctx)
	var out []domain.Event
	for _, e := range all {
		if e.Theme == theme {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memEventRepo) GetByID(ctx context.Context, id int64) (domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return domain.Event{}, domain.ErrNotFound
	}
	return e, nil
}

func (r *memEventRepo) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = event
	return event, nil
}

func (r *memEventRepo) Delete(ctx context.Context, id int64) (domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return domain.Event{}, domain.ErrNotFound
	}
	delete(r.events, id)
	return e, nil
}

type memArticleRepo struct {
	mu       sync.Mutex
	articles map[int64]domain.Article
}

func newMemArticleRepo() *memArticleRepo {
	return &memArticleRepo{articles: make(map[int64]domain.Article)}
}

func (r *memArticleRepo) List(ctx context.Context) ([]domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Article, 0, len(r.articles))
	for _, a := range r.articles {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *memArticleRepo) ListByType(ctx context.Context, articleType domain.ArticleType) ([]domain.Article, error) {
	all, _ := r.List(ctx)
	var out []domain.Article
	for _, a := range all {
		if a.Type == articleType {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memArticleRepo) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[id]
	if !ok {
		return domain.Article{}, domain.ErrNotFound
	}
	return a, nil
}

func (r *memArticleRepo) Create(ctx context.Context, article domain.Article) (domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.articles[article.ID] = article
	return article, nil
}

func (r *memArticleRepo) Delete(ctx context.Context, id int64) (domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[id]
	if !ok {
		return domain.Article{}, domain.ErrNotFound
	}
	delete(r.articles, id)
	return a, nil
}

type memPodcastRepo struct {
	mu       sync.Mutex
	podcasts map[int64]domain.Podcast
}

func newMemPodcastRepo() *memPodcastRepo {
	return &memPodcastRepo{podcasts: make(map[int64]domain.Podcast)}
}

func (r *memPodcastRepo) List(ctx context.Context) ([]domain.Podcast, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Podcast, 0, len(r.podcasts))
	for _, p := range r.podcasts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *memPodcastRepo) GetByID(ctx context.Context, id int64) (domain.Podcast, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.podcasts[id]
	if !ok {
		return domain.Podcast{}, domain.ErrNotFound
	}
	return p, nil
}

func (r *memPodcastRepo) Create(ctx context.Context, podcast domain.Podcast) (domain.Podcast, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.podcasts[podcast.ID] = podcast
	return podcast, nil
}

func (r *memPodcastRepo) Delete(ctx context.Context, id int64) (domain.Podcast, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.podcasts[id]
	if !ok {
		return domain.Podcast{}, domain.ErrNotFound
	}
	delete(r.podcasts, id)
	return p, nil
}

type memOpportunityRepo struct {
	mu            sync.Mutex
	opportunities map[int64]domain.Opportunity
}

func newMemOpportunityRepo() *memOpportunityRepo {
	return &memOpportunityRepo{opportunities: make(map[int64]domain.Opportunity)}
}

func (r *memOpportunityRepo) List(ctx context.Context) ([]domain.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Opportunity, 0, len(r.opportunities))
	for _, o := range r.opportunities {
		out = append(out, o)
	}
	return out, nil
}

func (r *memOpportunityRepo) GetByID(ctx context.Context, id int64) (domain.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.opportunities[id]
	if !ok {
		return domain.Opportunity{}, domain.ErrNotFound
	}
	return o, nil
}

func (r *memOpportunityRepo) Create(ctx context.Context, opportunity domain.Opportunity) (domain.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opportunities[opportunity.ID] = opportunity
	return opportunity, nil
}

func (r *memOpportunityRepo) Delete(ctx context.Context, id int64) (domain.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.opportunities[id]
	if !ok {
		return domain.Opportunity{}, domain.ErrNotFound
	}
	delete(r.opportunities, id)
	return o, nil
}

type memOrganizerRepo struct {
	mu         sync.Mutex
	organizers map[int64]domain.Organizer
}

func newMemOrganizerRepo() *memOrganizerRepo {
	return &memOrganizerRepo{organizers: make(map[int64]domain.Organizer)}
}

func (r *memOrganizerRepo) List(ctx context.Context) ([]domain.Organizer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Organizer, 0, len(r.organizers))
	for _, o := range r.organizers {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memOrganizerRepo) GetByID(ctx context.Context, id int64) (domain.Organizer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.organizers[id]
	if !ok {
		return domain.Organizer{}, domain.ErrNotFound
	}
	return o, nil
}

func (r *memOrganizerRepo) Create(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.organizers {
		if o.Email == organizer.Email {
			return domain.Organizer{}, domain.ErrDuplicate
		}
	}
	r.organizers[organizer.ID] = organizer
	return organizer, nil
}

func (r *memOrganizerRepo) Delete(ctx context.Context, id int64) (domain.Organizer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.organizers[id]
	if !ok {
		return domain.Organizer{}, domain.ErrNotFound
	}
	delete(r.organizers, id)
	return o, nil
}

// fakeHost records upload and delete calls instead of touching a real store.
type fakeHost struct {
	mu        sync.Mutex
	uploads   []string
	deletes   []string
	uploadErr error
	deleteErr error
}

func (f *fakeHost) Upload(ctx context.Context, file media.File) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, file.Name)
	id := fmt.Sprintf("asset-%d", len(f.uploads))
	return "https://cdn.example.com/" + id + "?fm=auto&q=auto", nil
}

func (f *fakeHost) Delete(ctx context.Context, publicID string, kind media.Kind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, string(kind)+":"+publicID)
	return f.deleteErr
}
