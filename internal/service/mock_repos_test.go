package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/internal/model"
	"github.com/SecondHemisphere/portal-actividades/internal/repository"
)

// containsFold reports a case-insensitive substring match, the behavior
// search filters promise for text fields.
func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, includeInactive bool) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if !includeInactive && !u.IsActive {
			continue
		}
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) Search(_ context.Context, f repository.UserFilter) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if f.Name != "" && !containsFold(u.Name, f.Name) {
			continue
		}
		if f.Email != "" && !containsFold(u.Email, f.Email) {
			continue
		}
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) SetActive(_ context.Context, id string, active bool) error {
	if u, ok := m.users[id]; ok {
		u.IsActive = active
		return nil
	}
	return gorm.ErrRecordNotFound
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	users    *mockUserRepo
	profiles map[string]*model.StudentProfile
}

func newMockStudentRepo(users *mockUserRepo) *mockStudentRepo {
	return &mockStudentRepo{users: users, profiles: make(map[string]*model.StudentProfile)}
}

func (m *mockStudentRepo) Create(ctx context.Context, user *model.User, profile *model.StudentProfile) error {
	if err := m.users.Create(ctx, user); err != nil {
		return err
	}
	profile.UserID = user.UserID
	profile.User = user
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.StudentProfile, error) {
	if p, ok := m.profiles[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, includeInactive bool) ([]model.StudentProfile, error) {
	var result []model.StudentProfile
	for _, p := range m.profiles {
		if !includeInactive && p.User != nil && !p.User.IsActive {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockStudentRepo) Search(_ context.Context, f repository.StudentFilter) ([]model.StudentProfile, error) {
	var result []model.StudentProfile
	for _, p := range m.profiles {
		if p.User == nil {
			continue
		}
		if f.Name != "" && !containsFold(p.User.Name, f.Name) {
			continue
		}
		if f.Email != "" && !containsFold(p.User.Email, f.Email) {
			continue
		}
		if f.Faculty != "" && !containsFold(p.Faculty, f.Faculty) {
			continue
		}
		if f.Career != "" && !containsFold(p.Career, f.Career) {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockStudentRepo) Update(_ context.Context, user *model.User, profile *model.StudentProfile) error {
	m.users.users[user.UserID] = user
	m.profiles[profile.UserID] = profile
	return nil
}

// ── Mock OrganizerRepository ──

type mockOrganizerRepo struct {
	users    *mockUserRepo
	profiles map[string]*model.OrganizerProfile
}

func newMockOrganizerRepo(users *mockUserRepo) *mockOrganizerRepo {
	return &mockOrganizerRepo{users: users, profiles: make(map[string]*model.OrganizerProfile)}
}

func (m *mockOrganizerRepo) Create(ctx context.Context, user *model.User, profile *model.OrganizerProfile) error {
	if err := m.users.Create(ctx, user); err != nil {
		return err
	}
	profile.UserID = user.UserID
	profile.User = user
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockOrganizerRepo) GetByID(_ context.Context, id string) (*model.OrganizerProfile, error) {
	if p, ok := m.profiles[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrganizerRepo) List(_ context.Context, includeInactive bool) ([]model.OrganizerProfile, error) {
	var result []model.OrganizerProfile
	for _, p := range m.profiles {
		if !includeInactive && p.User != nil && !p.User.IsActive {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockOrganizerRepo) Search(_ context.Context, f repository.OrganizerFilter) ([]model.OrganizerProfile, error) {
	var result []model.OrganizerProfile
	for _, p := range m.profiles {
		if p.User == nil {
			continue
		}
		if f.Name != "" && !containsFold(p.User.Name, f.Name) {
			continue
		}
		if f.Email != "" && !containsFold(p.User.Email, f.Email) {
			continue
		}
		if f.Department != "" && !containsFold(p.Department, f.Department) {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockOrganizerRepo) Update(_ context.Context, user *model.User, profile *model.OrganizerProfile) error {
	m.users.users[user.UserID] = user
	m.profiles[profile.UserID] = profile
	return nil
}

// ── Mock CategoryRepository ──

type mockCategoryRepo struct {
	categories map[string]*model.Category
	seq        int
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[string]*model.Category)}
}

func (m *mockCategoryRepo) Create(_ context.Context, cat *model.Category) error {
	if cat.CategoryID == "" {
		m.seq++
		cat.CategoryID = fmt.Sprintf("cat-%03d", m.seq)
	}
	m.categories[cat.CategoryID] = cat
	return nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id string) (*model.Category, error) {
	if c, ok := m.categories[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) GetByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range m.categories {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) List(_ context.Context, includeInactive bool) ([]model.Category, error) {
	var result []model.Category
	for _, c := range m.categories {
		if !includeInactive && !c.IsActive {
			continue
		}
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCategoryRepo) Search(_ context.Context, name string) ([]model.Category, error) {
	var result []model.Category
	for _, c := range m.categories {
		if name != "" && !containsFold(c.Name, name) {
			continue
		}
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, cat *model.Category) error {
	m.categories[cat.CategoryID] = cat
	return nil
}

func (m *mockCategoryRepo) SetActive(_ context.Context, id string, active bool) error {
	if c, ok := m.categories[id]; ok {
		c.IsActive = active
		return nil
	}
	return gorm.ErrRecordNotFound
}

// ── Mock ActivityRepository ──

type mockActivityRepo struct {
	activities map[string]*model.Activity
	seq        int
}

func newMockActivityRepo() *mockActivityRepo {
	return &mockActivityRepo{activities: make(map[string]*model.Activity)}
}

func (m *mockActivityRepo) Create(_ context.Context, act *model.Activity) error {
	if act.ActivityID == "" {
		m.seq++
		act.ActivityID = fmt.Sprintf("act-%03d", m.seq)
	}
	m.activities[act.ActivityID] = act
	return nil
}

func (m *mockActivityRepo) GetByID(_ context.Context, id string) (*model.Activity, error) {
	if a, ok := m.activities[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockActivityRepo) List(_ context.Context, includeInactive bool) ([]model.Activity, error) {
	var result []model.Activity
	for _, a := range m.activities {
		if !includeInactive && !a.IsActive {
			continue
		}
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *mockActivityRepo) ListByOrganizer(_ context.Context, organizerID string) ([]model.Activity, error) {
	var result []model.Activity
	for _, a := range m.activities {
		if a.OrganizerID == organizerID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockActivityRepo) ListByMonth(_ context.Context, year int, month time.Month, organizerID string) ([]model.Activity, error) {
	var result []model.Activity
	for _, a := range m.activities {
		if a.Date.Year() != year || a.Date.Month() != month {
			continue
		}
		if organizerID != "" && a.OrganizerID != organizerID {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockActivityRepo) Search(_ context.Context, f repository.ActivityFilter) ([]model.Activity, error) {
	var result []model.Activity
	for _, a := range m.activities {
		if f.Title != "" && !containsFold(a.Title, f.Title) {
			continue
		}
		if f.CategoryID != "" && a.CategoryID != f.CategoryID {
			continue
		}
		if f.OrganizerID != "" && a.OrganizerID != f.OrganizerID {
			continue
		}
		if f.Location != "" && !containsFold(a.Location, f.Location) {
			continue
		}
		if f.From != nil && a.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && a.Date.After(*f.To) {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockActivityRepo) Update(_ context.Context, act *model.Activity) error {
	m.activities[act.ActivityID] = act
	return nil
}

func (m *mockActivityRepo) SetActive(_ context.Context, id string, active bool) error {
	if a, ok := m.activities[id]; ok {
		a.IsActive = active
		return nil
	}
	return gorm.ErrRecordNotFound
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	enrollments map[string]*model.Enrollment
	seq         int
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{enrollments: make(map[string]*model.Enrollment)}
}

func (m *mockEnrollmentRepo) Create(_ context.Context, e *model.Enrollment) error {
	if e.EnrollmentID == "" {
		m.seq++
		e.EnrollmentID = fmt.Sprintf("enr-%03d", m.seq)
	}
	m.enrollments[e.EnrollmentID] = e
	return nil
}

func (m *mockEnrollmentRepo) GetByID(_ context.Context, id string) (*model.Enrollment, error) {
	if e, ok := m.enrollments[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) GetByActivityAndStudent(_ context.Context, activityID, studentID string) (*model.Enrollment, error) {
	for _, e := range m.enrollments {
		if e.ActivityID == activityID && e.StudentID == studentID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) List(_ context.Context) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEnrollmentRepo) ListByStudent(_ context.Context, studentID string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepo) ListByActivity(_ context.Context, activityID string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.ActivityID == activityID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepo) Search(_ context.Context, f repository.EnrollmentFilter) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if f.StudentID != "" && e.StudentID != f.StudentID {
			continue
		}
		if f.ActivityID != "" && e.ActivityID != f.ActivityID {
			continue
		}
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if f.From != nil && e.EnrollmentDate.Before(*f.From) {
			continue
		}
		if f.To != nil && e.EnrollmentDate.After(*f.To) {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEnrollmentRepo) Update(_ context.Context, e *model.Enrollment) error {
	m.enrollments[e.EnrollmentID] = e
	return nil
}

func (m *mockEnrollmentRepo) CountActiveByActivity(_ context.Context, activityID string) (int64, error) {
	var n int64
	for _, e := range m.enrollments {
		if e.ActivityID == activityID && e.Status == model.EnrollmentActive {
			n++
		}
	}
	return n, nil
}

// ── Mock RatingRepository ──

type mockRatingRepo struct {
	ratings map[string]*model.Rating
	seq     int
}

func newMockRatingRepo() *mockRatingRepo {
	return &mockRatingRepo{ratings: make(map[string]*model.Rating)}
}

func (m *mockRatingRepo) Create(_ context.Context, rat *model.Rating) error {
	if rat.RatingID == "" {
		m.seq++
		rat.RatingID = fmt.Sprintf("rat-%03d", m.seq)
	}
	m.ratings[rat.RatingID] = rat
	return nil
}

func (m *mockRatingRepo) GetByID(_ context.Context, id string) (*model.Rating, error) {
	if r, ok := m.ratings[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRatingRepo) GetByActivityAndStudent(_ context.Context, activityID, studentID string) (*model.Rating, error) {
	for _, r := range m.ratings {
		if r.ActivityID == activityID && r.StudentID == studentID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRatingRepo) ListByActivity(_ context.Context, activityID string) ([]model.Rating, error) {
	var result []model.Rating
	for _, r := range m.ratings {
		if r.ActivityID == activityID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockRatingRepo) ListByStudent(_ context.Context, studentID string) ([]model.Rating, error) {
	var result []model.Rating
	for _, r := range m.ratings {
		if r.StudentID == studentID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockRatingRepo) Search(_ context.Context, f repository.RatingFilter) ([]model.Rating, error) {
	var result []model.Rating
	for _, r := range m.ratings {
		if f.ActivityID != "" && r.ActivityID != f.ActivityID {
			continue
		}
		if f.StudentID != "" && r.StudentID != f.StudentID {
			continue
		}
		if f.MinStars > 0 && r.Stars < f.MinStars {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockRatingRepo) Update(_ context.Context, rat *model.Rating) error {
	m.ratings[rat.RatingID] = rat
	return nil
}

func (m *mockRatingRepo) Delete(_ context.Context, id string) error {
	delete(m.ratings, id)
	return nil
}

// ── Mock FacultyRepository ──

type mockFacultyRepo struct {
	faculties []model.Faculty
}

func newMockFacultyRepo() *mockFacultyRepo {
	return &mockFacultyRepo{}
}

func (m *mockFacultyRepo) ListWithCareers(_ context.Context) ([]model.Faculty, error) {
	return m.faculties, nil
}

// ── Mock DashboardRepository ──

type mockDashboardRepo struct {
	totals      repository.Totals
	enrollments *mockEnrollmentRepo
	categories  []repository.CategoryCount
	topRatings  []repository.ActivityAverage
}

func newMockDashboardRepo(enrollments *mockEnrollmentRepo) *mockDashboardRepo {
	return &mockDashboardRepo{enrollments: enrollments}
}

func (m *mockDashboardRepo) Totals(_ context.Context) (*repository.Totals, error) {
	t := m.totals
	return &t, nil
}

func (m *mockDashboardRepo) CountEnrollmentsBetween(_ context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, e := range m.enrollments.enrollments {
		if !e.EnrollmentDate.Before(from) && e.EnrollmentDate.Before(to) {
			n++
		}
	}
	return n, nil
}

func (m *mockDashboardRepo) ActivitiesByCategory(_ context.Context) ([]repository.CategoryCount, error) {
	return m.categories, nil
}

func (m *mockDashboardRepo) TopRatings(_ context.Context, limit int) ([]repository.ActivityAverage, error) {
	if limit < len(m.topRatings) {
		return m.topRatings[:limit], nil
	}
	return m.topRatings, nil
}

// ── Shared setup ──

type testRepos struct {
	users       *mockUserRepo
	students    *mockStudentRepo
	organizers  *mockOrganizerRepo
	categories  *mockCategoryRepo
	activities  *mockActivityRepo
	enrollments *mockEnrollmentRepo
	ratings     *mockRatingRepo
	faculties   *mockFacultyRepo
	dashboard   *mockDashboardRepo
}

func newTestRepos() (*repository.Repository, *testRepos) {
	users := newMockUserRepo()
	enrollments := newMockEnrollmentRepo()
	mocks := &testRepos{
		users:       users,
		students:    newMockStudentRepo(users),
		organizers:  newMockOrganizerRepo(users),
		categories:  newMockCategoryRepo(),
		activities:  newMockActivityRepo(),
		enrollments: enrollments,
		ratings:     newMockRatingRepo(),
		faculties:   newMockFacultyRepo(),
		dashboard:   newMockDashboardRepo(enrollments),
	}
	repo := &repository.Repository{
		User:       mocks.users,
		Student:    mocks.students,
		Organizer:  mocks.organizers,
		Category:   mocks.categories,
		Activity:   mocks.activities,
		Enrollment: mocks.enrollments,
		Rating:     mocks.ratings,
		Faculty:    mocks.faculties,
		Dashboard:  mocks.dashboard,
	}
	return repo, mocks
}
