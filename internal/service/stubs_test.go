package service

import (
	"context"
	"fmt"
	"time"

	"github.com/akhmetov/go-remind-sync/internal/store"
	"github.com/akhmetov/go-remind-sync/models"
)

// Hand-written stubs keep the service tests free of generated code and break
// the import cycle a shared mock package would create.

var (
	errIdentityMissing = fmt.Errorf("%w: not in stub", store.ErrIdentityNotFound)
	errUserMissing     = fmt.Errorf("%w: not in stub", store.ErrNoUserWasFound)
)

type stubIDGen struct {
	ids  []string
	next int
}

func (g *stubIDGen) Generate() string {
	if g.next < len(g.ids) {
		id := g.ids[g.next]
		g.next++
		return id
	}
	g.next++
	return fmt.Sprintf("generated-%d", g.next)
}

type stubGate struct {
	online bool
	probes int
}

func (g *stubGate) IsConnected(_ context.Context) bool {
	g.probes++
	return g.online
}

type memQueue struct {
	entries    []models.SyncQueueEntry
	enqueueErr error
}

func (q *memQueue) Enqueue(_ context.Context, entry models.SyncQueueEntry) error {
	if q.enqueueErr != nil {
		return q.enqueueErr
	}
	q.entries = append(q.entries, entry)
	return nil
}

func (q *memQueue) PendingFor(_ context.Context, ownerID string) ([]models.SyncQueueEntry, error) {
	var pending []models.SyncQueueEntry
	for _, e := range q.entries {
		if e.OwnerID == ownerID && e.Attempts < models.MaxSyncAttempts {
			pending = append(pending, e)
		}
	}
	return pending, nil
}

func (q *memQueue) CountPendingFor(ctx context.Context, ownerID string) (int, error) {
	pending, _ := q.PendingFor(ctx, ownerID)
	return len(pending), nil
}

func (q *memQueue) RecordSuccess(_ context.Context, entryID string) error {
	for i, e := range q.entries {
		if e.ID == entryID {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("entry %s not found", entryID)
}

func (q *memQueue) RecordFailure(_ context.Context, entryID string, at time.Time) error {
	for i := range q.entries {
		if q.entries[i].ID == entryID {
			q.entries[i].Attempts++
			q.entries[i].LastAttemptAt = &at
			return nil
		}
	}
	return fmt.Errorf("entry %s not found", entryID)
}

func (q *memQueue) PurgeDeadLettered(_ context.Context, ownerID string) (int64, error) {
	var kept []models.SyncQueueEntry
	var purged int64
	for _, e := range q.entries {
		if e.OwnerID == ownerID && e.Attempts >= models.MaxSyncAttempts {
			purged++
			continue
		}
		kept = append(kept, e)
	}
	q.entries = kept
	return purged, nil
}

type memReminders struct {
	byID      map[string]models.Reminder
	synced    []string
	createErr error
	updateErr error
	upsertErr error
}

func newMemReminders() *memReminders {
	return &memReminders{byID: make(map[string]models.Reminder)}
}

func (m *memReminders) Create(_ context.Context, reminder models.Reminder) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byID[reminder.ID] = reminder
	return nil
}

func (m *memReminders) Update(_ context.Context, ownerID, id string, update models.ReminderUpdate, now time.Time) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	r, ok := m.byID[id]
	if !ok || r.OwnerID != ownerID {
		return fmt.Errorf("reminder %s not found", id)
	}
	if update.Title != nil {
		r.Title = *update.Title
	}
	if update.IsCompleted != nil {
		r.IsCompleted = *update.IsCompleted
	}
	if update.IsActive != nil {
		r.IsActive = *update.IsActive
	}
	if update.CompletedAt != nil {
		r.CompletedAt = update.CompletedAt
	}
	r.UpdatedAt = now
	m.byID[id] = r
	return nil
}

func (m *memReminders) SoftDelete(_ context.Context, ownerID, id string, now time.Time) error {
	r, ok := m.byID[id]
	if !ok || r.OwnerID != ownerID {
		return nil
	}
	r.IsDeleted = true
	r.UpdatedAt = now
	m.byID[id] = r
	return nil
}

func (m *memReminders) GetByID(_ context.Context, ownerID, id string) (models.Reminder, error) {
	r, ok := m.byID[id]
	if !ok || r.OwnerID != ownerID || r.IsDeleted {
		return models.Reminder{}, fmt.Errorf("reminder %s not found", id)
	}
	return r, nil
}

func (m *memReminders) ListByOwner(_ context.Context, ownerID string, _ models.ListQuery) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range m.byID {
		if r.OwnerID == ownerID && !r.IsDeleted {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReminders) Upsert(_ context.Context, reminder models.Reminder) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.byID[reminder.ID] = reminder
	return nil
}

func (m *memReminders) MarkSynced(_ context.Context, _ string, id string, at time.Time) error {
	r, ok := m.byID[id]
	if ok {
		r.SyncedAt = &at
		m.byID[id] = r
	}
	m.synced = append(m.synced, id)
	return nil
}

type memCategories struct {
	byID map[string]models.Category
}

func newMemCategories() *memCategories {
	return &memCategories{byID: make(map[string]models.Category)}
}

func (m *memCategories) Create(_ context.Context, category models.Category) error {
	m.byID[category.ID] = category
	return nil
}

func (m *memCategories) Update(_ context.Context, ownerID, id string, update models.CategoryUpdate, now time.Time) error {
	c, ok := m.byID[id]
	if !ok || c.OwnerID != ownerID {
		return fmt.Errorf("category %s not found", id)
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Color != nil {
		c.Color = *update.Color
	}
	c.UpdatedAt = now
	m.byID[id] = c
	return nil
}

func (m *memCategories) SoftDelete(_ context.Context, ownerID, id string, now time.Time) error {
	c, ok := m.byID[id]
	if !ok || c.OwnerID != ownerID {
		return nil
	}
	c.IsDeleted = true
	c.UpdatedAt = now
	m.byID[id] = c
	return nil
}

func (m *memCategories) GetByID(_ context.Context, ownerID, id string) (models.Category, error) {
	c, ok := m.byID[id]
	if !ok || c.OwnerID != ownerID || c.IsDeleted {
		return models.Category{}, fmt.Errorf("category %s not found", id)
	}
	return c, nil
}

func (m *memCategories) ListByOwner(_ context.Context, ownerID string) ([]models.Category, error) {
	var out []models.Category
	for _, c := range m.byID {
		if c.OwnerID == ownerID && !c.IsDeleted {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCategories) Upsert(_ context.Context, category models.Category) error {
	m.byID[category.ID] = category
	return nil
}

type memPlaces struct {
	byID map[string]models.SavedPlace
}

func newMemPlaces() *memPlaces {
	return &memPlaces{byID: make(map[string]models.SavedPlace)}
}

func (m *memPlaces) Create(_ context.Context, place models.SavedPlace) error {
	m.byID[place.ID] = place
	return nil
}

func (m *memPlaces) Update(_ context.Context, ownerID, id string, update models.SavedPlaceUpdate, now time.Time) error {
	p, ok := m.byID[id]
	if !ok || p.OwnerID != ownerID {
		return fmt.Errorf("saved place %s not found", id)
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Address != nil {
		p.Address = *update.Address
	}
	p.UpdatedAt = now
	m.byID[id] = p
	return nil
}

func (m *memPlaces) SoftDelete(_ context.Context, ownerID, id string, now time.Time) error {
	p, ok := m.byID[id]
	if !ok || p.OwnerID != ownerID {
		return nil
	}
	p.IsDeleted = true
	p.UpdatedAt = now
	m.byID[id] = p
	return nil
}

func (m *memPlaces) GetByID(_ context.Context, ownerID, id string) (models.SavedPlace, error) {
	p, ok := m.byID[id]
	if !ok || p.OwnerID != ownerID || p.IsDeleted {
		return models.SavedPlace{}, fmt.Errorf("saved place %s not found", id)
	}
	return p, nil
}

func (m *memPlaces) ListByOwner(_ context.Context, ownerID string) ([]models.SavedPlace, error) {
	var out []models.SavedPlace
	for _, p := range m.byID {
		if p.OwnerID == ownerID && !p.IsDeleted {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPlaces) Upsert(_ context.Context, place models.SavedPlace) error {
	m.byID[place.ID] = place
	return nil
}

type memIdentities struct {
	byID       map[string]models.Identity
	current    string
	saveErr    error
	migrateErr error

	migratedGuest   string
	migratedAccount models.Identity
}

func newMemIdentities() *memIdentities {
	return &memIdentities{byID: make(map[string]models.Identity)}
}

func (m *memIdentities) Save(_ context.Context, identity models.Identity) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.byID[identity.ID] = identity
	return nil
}

func (m *memIdentities) GetByID(_ context.Context, id string) (models.Identity, error) {
	identity, ok := m.byID[id]
	if !ok {
		return models.Identity{}, errIdentityMissing
	}
	return identity, nil
}

func (m *memIdentities) GetCurrent(_ context.Context) (models.Identity, error) {
	if m.current == "" {
		return models.Identity{}, errIdentityMissing
	}
	identity := m.byID[m.current]
	identity.IsCurrent = true
	return identity, nil
}

func (m *memIdentities) GetGuest(_ context.Context) (models.Identity, error) {
	for _, identity := range m.byID {
		if identity.IsGuest {
			return identity, nil
		}
	}
	return models.Identity{}, errIdentityMissing
}

func (m *memIdentities) SetCurrent(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return errIdentityMissing
	}
	m.current = id
	return nil
}

func (m *memIdentities) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func (m *memIdentities) MigrateOwner(_ context.Context, guestID string, account models.Identity) error {
	if m.migrateErr != nil {
		return m.migrateErr
	}
	m.migratedGuest = guestID
	m.migratedAccount = account
	delete(m.byID, guestID)
	m.byID[account.ID] = account
	m.current = account.ID
	return nil
}

// stubAdapter is a hand-rolled adapter.ServerAdapter double recording every
// push and serving canned pull responses.
type stubAdapter struct {
	token string

	registerErr       error
	loginErr          error
	pingErr           error
	upsertErr         error
	upsertReminderErr error
	deleteErr         error
	pullErr           error

	registeredUser models.User
	loggedInUser   models.User

	upsertedReminders []models.RemoteReminder
	upsertedCats      []models.RemoteCategory
	upsertedPlaces    []models.RemoteSavedPlace
	deletedIDs        []string

	pullReminders []models.RemoteReminder
	pullCats      []models.RemoteCategory
	pullPlaces    []models.RemoteSavedPlace
}

func (a *stubAdapter) SetToken(token string) { a.token = token }
func (a *stubAdapter) Token() string         { return a.token }

func (a *stubAdapter) Register(_ context.Context, _ models.User) (models.User, error) {
	if a.registerErr != nil {
		return models.User{}, a.registerErr
	}
	return a.registeredUser, nil
}

func (a *stubAdapter) Login(_ context.Context, _ models.User) (models.User, error) {
	if a.loginErr != nil {
		return models.User{}, a.loginErr
	}
	return a.loggedInUser, nil
}

func (a *stubAdapter) Ping(_ context.Context) error { return a.pingErr }

func (a *stubAdapter) UpsertReminder(_ context.Context, reminder models.RemoteReminder) error {
	if a.upsertErr != nil {
		return a.upsertErr
	}
	if a.upsertReminderErr != nil {
		return a.upsertReminderErr
	}
	a.upsertedReminders = append(a.upsertedReminders, reminder)
	return nil
}

func (a *stubAdapter) DeleteReminder(_ context.Context, id string) error {
	if a.deleteErr != nil {
		return a.deleteErr
	}
	a.deletedIDs = append(a.deletedIDs, id)
	return nil
}

func (a *stubAdapter) PullReminders(_ context.Context) ([]models.RemoteReminder, error) {
	if a.pullErr != nil {
		return nil, a.pullErr
	}
	return a.pullReminders, nil
}

func (a *stubAdapter) UpsertCategory(_ context.Context, category models.RemoteCategory) error {
	if a.upsertErr != nil {
		return a.upsertErr
	}
	a.upsertedCats = append(a.upsertedCats, category)
	return nil
}

func (a *stubAdapter) DeleteCategory(_ context.Context, id string) error {
	if a.deleteErr != nil {
		return a.deleteErr
	}
	a.deletedIDs = append(a.deletedIDs, id)
	return nil
}

func (a *stubAdapter) PullCategories(_ context.Context) ([]models.RemoteCategory, error) {
	if a.pullErr != nil {
		return nil, a.pullErr
	}
	return a.pullCats, nil
}

func (a *stubAdapter) UpsertSavedPlace(_ context.Context, place models.RemoteSavedPlace) error {
	if a.upsertErr != nil {
		return a.upsertErr
	}
	a.upsertedPlaces = append(a.upsertedPlaces, place)
	return nil
}

func (a *stubAdapter) DeleteSavedPlace(_ context.Context, id string) error {
	if a.deleteErr != nil {
		return a.deleteErr
	}
	a.deletedIDs = append(a.deletedIDs, id)
	return nil
}

func (a *stubAdapter) PullSavedPlaces(_ context.Context) ([]models.RemoteSavedPlace, error) {
	if a.pullErr != nil {
		return nil, a.pullErr
	}
	return a.pullPlaces, nil
}

type stubUserRepo struct {
	byEmail   map[string]models.User
	createErr error
	findErr   error
	created   []models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]models.User)}
}

func (r *stubUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if r.createErr != nil {
		return models.User{}, r.createErr
	}
	r.byEmail[user.Email] = user
	r.created = append(r.created, user)
	return user, nil
}

func (r *stubUserRepo) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	if r.findErr != nil {
		return models.User{}, r.findErr
	}
	user, ok := r.byEmail[email]
	if !ok {
		return models.User{}, errUserMissing
	}
	return user, nil
}

func (r *stubUserRepo) FindUserByID(_ context.Context, id string) (models.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, errUserMissing
}

type memRemoteRecords struct {
	reminders map[string]models.Reminder
	cats      map[string]models.Category
	places    map[string]models.SavedPlace
}

func newMemRemoteRecords() *memRemoteRecords {
	return &memRemoteRecords{
		reminders: make(map[string]models.Reminder),
		cats:      make(map[string]models.Category),
		places:    make(map[string]models.SavedPlace),
	}
}

func (m *memRemoteRecords) UpsertReminder(_ context.Context, reminder models.Reminder) error {
	m.reminders[reminder.ID] = reminder
	return nil
}

func (m *memRemoteRecords) DeleteReminder(_ context.Context, ownerID, id string) error {
	if r, ok := m.reminders[id]; ok && r.OwnerID == ownerID {
		r.IsDeleted = true
		m.reminders[id] = r
	}
	return nil
}

func (m *memRemoteRecords) ListReminders(_ context.Context, ownerID string) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range m.reminders {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRemoteRecords) UpsertCategory(_ context.Context, category models.Category) error {
	m.cats[category.ID] = category
	return nil
}

func (m *memRemoteRecords) DeleteCategory(_ context.Context, ownerID, id string) error {
	if c, ok := m.cats[id]; ok && c.OwnerID == ownerID {
		c.IsDeleted = true
		m.cats[id] = c
	}
	return nil
}

func (m *memRemoteRecords) ListCategories(_ context.Context, ownerID string) ([]models.Category, error) {
	var out []models.Category
	for _, c := range m.cats {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memRemoteRecords) UpsertSavedPlace(_ context.Context, place models.SavedPlace) error {
	m.places[place.ID] = place
	return nil
}

func (m *memRemoteRecords) DeleteSavedPlace(_ context.Context, ownerID, id string) error {
	if p, ok := m.places[id]; ok && p.OwnerID == ownerID {
		p.IsDeleted = true
		m.places[id] = p
	}
	return nil
}

func (m *memRemoteRecords) ListSavedPlaces(_ context.Context, ownerID string) ([]models.SavedPlace, error) {
	var out []models.SavedPlace
	for _, p := range m.places {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}
