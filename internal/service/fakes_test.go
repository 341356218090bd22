package service

import (
	"context"
	"fmt"
	"time"

	"smileon/internal/domain"
)

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
	counts       []domain.SlotCount
	active       map[string][2]int
	nextID       int64
	createCalls  int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		reservations: make(map[int64]*domain.Reservation),
		active:       make(map[string][2]int),
	}
}

func slotKey(date, timeSlot string) string {
	return date + " " + timeSlot
}

func (f *fakeReservationRepo) Create(_ context.Context, userID *int64, dto domain.CreateReservationDTO) (int64, error) {
	f.nextID++
	f.createCalls++
	f.reservations[f.nextID] = &domain.Reservation{
		ID:          f.nextID,
		UserID:      userID,
		PatientName: dto.PatientName,
		PhoneNumber: dto.PhoneNumber,
		DesiredDate: dto.DesiredDate,
		DesiredTime: dto.DesiredTime,
		Notes:       dto.Notes,
		Status:      domain.ReservationStatusPending,
		CreatedAt:   time.Now(),
	}
	return f.nextID, nil
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	r, ok := f.reservations[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.reservations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.reservations, id)
	return nil
}

func (f *fakeReservationRepo) List(_ context.Context, filter domain.ReservationFilter) ([]domain.Reservation, int, error) {
	var out []domain.Reservation
	for _, r := range f.reservations {
		if filter.PhoneNumber != nil && r.PhoneNumber != *filter.PhoneNumber {
			continue
		}
		if filter.UserID != nil && (r.UserID == nil || *r.UserID != *filter.UserID) {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		out = append(out, *r)
	}
	return out, len(out), nil
}

func (f *fakeReservationRepo) CountByMonth(_ context.Context, _, _ string) ([]domain.SlotCount, error) {
	return f.counts, nil
}

func (f *fakeReservationRepo) CountActiveBySlot(_ context.Context, date, timeSlot string) (int, int, error) {
	v := f.active[slotKey(date, timeSlot)]
	return v[0], v[1], nil
}

type fakeScheduleRepo struct {
	blocked     map[string]domain.BlockedSlot
	nextID      int64
	createCalls int
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{blocked: make(map[string]domain.BlockedSlot)}
}

func (f *fakeScheduleRepo) CreateBlockedSlot(_ context.Context, date, timeSlot string) (int64, error) {
	f.createCalls++
	key := slotKey(date, timeSlot)
	if _, ok := f.blocked[key]; ok {
		return 0, domain.ErrAlreadyBlocked
	}
	f.nextID++
	f.blocked[key] = domain.BlockedSlot{ID: f.nextID, SlotDate: date, SlotTime: timeSlot, CreatedAt: time.Now()}
	return f.nextID, nil
}

func (f *fakeScheduleRepo) DeleteBlockedSlot(_ context.Context, date, timeSlot string) error {
	key := slotKey(date, timeSlot)
	if _, ok := f.blocked[key]; !ok {
		return domain.ErrNotFound
	}
	delete(f.blocked, key)
	return nil
}

func (f *fakeScheduleRepo) GetBlockedSlot(_ context.Context, date, timeSlot string) (*domain.BlockedSlot, error) {
	slot, ok := f.blocked[slotKey(date, timeSlot)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &slot, nil
}

func (f *fakeScheduleRepo) ListBlockedSlotsByRange(_ context.Context, from, to string) ([]domain.BlockedSlot, error) {
	var out []domain.BlockedSlot
	for _, slot := range f.blocked {
		if slot.SlotDate >= from && slot.SlotDate < to {
			out = append(out, slot)
		}
	}
	return out, nil
}

type fakeScheduleCache struct {
	data        map[string]domain.Schedule
	invalidated []string
}

func newFakeScheduleCache() *fakeScheduleCache {
	return &fakeScheduleCache{data: make(map[string]domain.Schedule)}
}

func monthCacheKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func (f *fakeScheduleCache) Get(_ context.Context, year, month int) (domain.Schedule, bool) {
	s, ok := f.data[monthCacheKey(year, month)]
	return s, ok
}

func (f *fakeScheduleCache) Set(_ context.Context, year, month int, schedule domain.Schedule) {
	f.data[monthCacheKey(year, month)] = schedule
}

func (f *fakeScheduleCache) Invalidate(_ context.Context, year, month int) {
	key := monthCacheKey(year, month)
	delete(f.data, key)
	f.invalidated = append(f.invalidated, key)
}

type fakeConsultationRepo struct {
	items  map[int64]*domain.Consultation
	nextID int64
}

func newFakeConsultationRepo() *fakeConsultationRepo {
	return &fakeConsultationRepo{items: make(map[int64]*domain.Consultation)}
}

func (f *fakeConsultationRepo) Create(_ context.Context, userID *int64, dto domain.CreateConsultationDTO, passwordHash string) (int64, error) {
	f.nextID++
	f.items[f.nextID] = &domain.Consultation{
		ID:           f.nextID,
		UserID:       userID,
		AuthorName:   dto.AuthorName,
		PhoneNumber:  dto.PhoneNumber,
		Title:        dto.Title,
		Content:      dto.Content,
		IsSecret:     dto.IsSecret,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return f.nextID, nil
}

func (f *fakeConsultationRepo) GetByID(_ context.Context, id int64) (*domain.Consultation, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeConsultationRepo) Update(_ context.Context, id int64, dto domain.UpdateConsultationDTO) error {
	c, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	if dto.Title != nil {
		c.Title = *dto.Title
	}
	if dto.Content != nil {
		c.Content = *dto.Content
	}
	return nil
}

func (f *fakeConsultationRepo) SetReply(_ context.Context, id int64, content string) error {
	c, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	now := time.Now()
	c.Reply = &content
	c.RepliedAt = &now
	return nil
}

func (f *fakeConsultationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeConsultationRepo) List(_ context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error) {
	var out []domain.Consultation
	for _, c := range f.items {
		if filter.UserID != nil && (c.UserID == nil || *c.UserID != *filter.UserID) {
			continue
		}
		out = append(out, *c)
	}
	return out, len(out), nil
}

type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, dto domain.CreateUserDTO) (int64, error) {
	f.nextID++
	f.users[f.nextID] = &domain.User{
		ID:           f.nextID,
		Name:         dto.Name,
		Email:        dto.Email,
		Phone:        dto.Phone,
		PasswordHash: dto.Password,
		Role:         dto.Role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	return f.nextID, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByPhone(_ context.Context, phone string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, id int64, dto domain.UpdateUserDTO) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	if dto.Name != nil {
		u.Name = *dto.Name
	}
	if dto.Email != nil {
		u.Email = *dto.Email
	}
	if dto.Phone != nil {
		u.Phone = *dto.Phone
	}
	if dto.IsActive != nil {
		u.IsActive = *dto.IsActive
	}
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]domain.User, int, error) {
	var out []domain.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, len(out), nil
}

type fakeAuthRepo struct {
	sessions map[string]domain.Session
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{sessions: make(map[string]domain.Session)}
}

func (f *fakeAuthRepo) CreateSession(_ context.Context, session domain.Session) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeAuthRepo) GetSessionByRefreshToken(_ context.Context, refreshToken string) (*domain.Session, error) {
	for _, s := range f.sessions {
		if s.RefreshToken == refreshToken {
			copied := s
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAuthRepo) DeleteSession(_ context.Context, id string) error {
	if _, ok := f.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.sessions, id)
	return nil
}

func (f *fakeAuthRepo) DeleteSessionsByUserID(_ context.Context, userID int64) error {
	for id, s := range f.sessions {
		if s.UserID == userID {
			delete(f.sessions, id)
		}
	}
	return nil
}
