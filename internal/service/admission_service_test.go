package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sekolahdigital/siakad-backend/internal/identifier"
	"github.com/sekolahdigital/siakad-backend/internal/model"
	"github.com/sekolahdigital/siakad-backend/internal/repository"
)

// fakeAdmissionStore is an in-memory AdmissionStore. InTx holds a mutex
// for the whole unit of work, mirroring the row lock that serializes
// concurrent transitions in PostgreSQL, and applies the staged writes
// only when fn succeeds.
type fakeAdmissionStore struct {
	mu         sync.Mutex
	applicants map[string]model.Applicant
	students   []model.Student
	classes    []model.Class
	txCount    int
}

func newFakeStore(applicants []model.Applicant, classes []model.Class) *fakeAdmissionStore {
	s := &fakeAdmissionStore{
		applicants: make(map[string]model.Applicant),
		classes:    classes,
	}
	for _, a := range applicants {
		s.applicants[a.ID] = a
	}
	return s
}

func (f *fakeAdmissionStore) InTx(ctx context.Context, fn func(tx repository.AdmissionTx) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.txCount++

	tx := &fakeAdmissionTx{
		applicants: make(map[string]model.Applicant, len(f.applicants)),
		students:   make([]model.Student, len(f.students)),
		classes:    f.classes,
	}
	for id, a := range f.applicants {
		tx.applicants[id] = a
	}
	copy(tx.students, f.students)

	if err := fn(tx); err != nil {
		return err
	}

	f.applicants = tx.applicants
	f.students = tx.students
	return nil
}

func (f *fakeAdmissionStore) applicant(id string) model.Applicant {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.applicants[id]
}

func (f *fakeAdmissionStore) studentsFor(applicantID string) []model.Student {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Student
	for _, s := range f.students {
		if s.ApplicantID == applicantID {
			out = append(out, s)
		}
	}
	return out
}

type fakeAdmissionTx struct {
	applicants map[string]model.Applicant
	students   []model.Student
	classes    []model.Class
}

func (t *fakeAdmissionTx) SetApplicantStatus(ctx context.Context, id string, status model.AdmissionStatus) (bool, error) {
	a, ok := t.applicants[id]
	if !ok {
		return false, nil
	}
	a.Status = status
	t.applicants[id] = a
	return true, nil
}

func (t *fakeAdmissionTx) GetApplicant(ctx context.Context, id string) (*model.Applicant, error) {
	a, ok := t.applicants[id]
	if !ok {
		return nil, errors.New("applicant vanished inside transaction")
	}
	return &a, nil
}

func (t *fakeAdmissionTx) FindStudentByApplicant(ctx context.Context, applicantID string) (*model.Student, error) {
	for i := range t.students {
		if t.students[i].ApplicantID == applicantID {
			s := t.students[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (t *fakeAdmissionTx) ListClasses(ctx context.Context) ([]model.Class, error) {
	return t.classes, nil
}

func (t *fakeAdmissionTx) InsertStudent(ctx context.Context, s *model.Student) error {
	t.students = append(t.students, *s)
	return nil
}

func testApplicant(id string) model.Applicant {
	return model.Applicant{
		ID:     id,
		Name:   "Budi Santoso",
		Status: model.AdmissionPending,
	}
}

func newTestService(store repository.AdmissionStore) *AdmissionService {
	return NewAdmissionService(nil, store, identifier.NewNanoid(), zerolog.Nop())
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	store := newFakeStore([]model.Applicant{testApplicant("APP-aaa")}, []model.Class{{ID: "KLS-1", Name: "7A"}})
	svc := newTestService(store)

	for _, raw := range []string{"Enrolled", "accepted", "", "PENDING"} {
		_, err := svc.SetStatus(context.Background(), "APP-aaa", raw)
		if !errors.Is(err, ErrInvalidAdmissionStatus) {
			t.Errorf("SetStatus(%q) error = %v, want ErrInvalidAdmissionStatus", raw, err)
		}
	}

	if store.txCount != 0 {
		t.Errorf("store reached %d times for invalid statuses, want 0", store.txCount)
	}
	if got := store.applicant("APP-aaa").Status; got != model.AdmissionPending {
		t.Errorf("applicant status = %q, want Pending", got)
	}
}

func TestSetStatusUnknownApplicant(t *testing.T) {
	store := newFakeStore(nil, []model.Class{{ID: "KLS-1", Name: "7A"}})
	svc := newTestService(store)

	_, err := svc.SetStatus(context.Background(), "APP-missing", "Accepted")
	if !errors.Is(err, ErrApplicantNotFound) {
		t.Fatalf("SetStatus error = %v, want ErrApplicantNotFound", err)
	}
}

func TestAcceptPromotesApplicant(t *testing.T) {
	store := newFakeStore(
		[]model.Applicant{testApplicant("APP-aaa")},
		[]model.Class{
			{ID: "KLS-2", Name: "7B"},
			{ID: "KLS-1", Name: "7A"},
		},
	)
	svc := newTestService(store)

	result, err := svc.SetStatus(context.Background(), "APP-aaa", "Accepted")
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if result.Status != model.AdmissionAccepted {
		t.Errorf("result.Status = %q, want Accepted", result.Status)
	}
	if result.StudentID == "" {
		t.Fatal("result.StudentID is empty, want a new student ID")
	}
	if !strings.HasPrefix(result.StudentID, identifier.StudentPrefix) {
		t.Errorf("student ID %q missing prefix %q", result.StudentID, identifier.StudentPrefix)
	}

	if got := store.applicant("APP-aaa").Status; got != model.AdmissionAccepted {
		t.Errorf("persisted applicant status = %q, want Accepted", got)
	}

	students := store.studentsFor("APP-aaa")
	if len(students) != 1 {
		t.Fatalf("got %d students for applicant, want 1", len(students))
	}
	s := students[0]
	if s.Name != "Budi Santoso" {
		t.Errorf("student name = %q, want applicant name", s.Name)
	}
	if s.ClassID != "KLS-1" {
		t.Errorf("student placed in %q, want KLS-1 (first class by name)", s.ClassID)
	}
	if s.AvatarURL != model.DefaultAvatarURL(s.ID) {
		t.Errorf("avatar URL = %q, want derived from student ID", s.AvatarURL)
	}
	if s.AvatarHint != model.DefaultAvatarHint {
		t.Errorf("avatar hint = %q, want %q", s.AvatarHint, model.DefaultAvatarHint)
	}
}

func TestAcceptIsIdempotent(t *testing.T) {
	store := newFakeStore(
		[]model.Applicant{testApplicant("APP-aaa")},
		[]model.Class{{ID: "KLS-1", Name: "7A"}},
	)
	svc := newTestService(store)

	first, err := svc.SetStatus(context.Background(), "APP-aaa", "Accepted")
	if err != nil {
		t.Fatalf("first SetStatus: %v", err)
	}

	second, err := svc.SetStatus(context.Background(), "APP-aaa", "Accepted")
	if err != nil {
		t.Fatalf("second SetStatus: %v", err)
	}
	if !second.AlreadyEnrolled {
		t.Error("second accept did not report AlreadyEnrolled")
	}
	if second.StudentID != "" {
		t.Errorf("second accept created student %q, want none", second.StudentID)
	}

	students := store.studentsFor("APP-aaa")
	if len(students) != 1 {
		t.Fatalf("got %d students after double accept, want 1", len(students))
	}
	if students[0].ID != first.StudentID {
		t.Errorf("surviving student %q, want the one from the first accept %q", students[0].ID, first.StudentID)
	}
}

func TestAcceptWithoutClassRollsBack(t *testing.T) {
	store := newFakeStore([]model.Applicant{testApplicant("APP-aaa")}, nil)
	svc := newTestService(store)

	_, err := svc.SetStatus(context.Background(), "APP-aaa", "Accepted")
	if !errors.Is(err, ErrNoClassAvailable) {
		t.Fatalf("SetStatus error = %v, want ErrNoClassAvailable", err)
	}

	// The status update must roll back together with the promotion.
	if got := store.applicant("APP-aaa").Status; got != model.AdmissionPending {
		t.Errorf("applicant status = %q after rollback, want Pending", got)
	}
	if students := store.studentsFor("APP-aaa"); len(students) != 0 {
		t.Errorf("got %d students after rollback, want 0", len(students))
	}
}

func TestRejectDoesNotPromote(t *testing.T) {
	// No classes on purpose: rejecting must not touch placement at all.
	store := newFakeStore([]model.Applicant{testApplicant("APP-aaa")}, nil)
	svc := newTestService(store)

	result, err := svc.SetStatus(context.Background(), "APP-aaa", "Rejected")
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if result.StudentID != "" || result.AlreadyEnrolled {
		t.Errorf("reject produced a promotion result: %+v", result)
	}
	if got := store.applicant("APP-aaa").Status; got != model.AdmissionRejected {
		t.Errorf("applicant status = %q, want Rejected", got)
	}
	if students := store.studentsFor("APP-aaa"); len(students) != 0 {
		t.Errorf("got %d students after reject, want 0", len(students))
	}
}

func TestReacceptAfterReject(t *testing.T) {
	store := newFakeStore(
		[]model.Applicant{testApplicant("APP-aaa")},
		[]model.Class{{ID: "KLS-1", Name: "7A"}},
	)
	svc := newTestService(store)

	if _, err := svc.SetStatus(context.Background(), "APP-aaa", "Rejected"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	result, err := svc.SetStatus(context.Background(), "APP-aaa", "Accepted")
	if err != nil {
		t.Fatalf("accept after reject: %v", err)
	}
	if result.StudentID == "" {
		t.Error("accept after reject did not create a student")
	}
}

func TestConcurrentAcceptsCreateOneStudent(t *testing.T) {
	store := newFakeStore(
		[]model.Applicant{testApplicant("APP-aaa")},
		[]model.Class{{ID: "KLS-1", Name: "7A"}},
	)
	svc := newTestService(store)

	const workers = 8
	results := make([]*StatusChange, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.SetStatus(context.Background(), "APP-aaa", "Accepted")
		}(i)
	}
	wg.Wait()

	created := 0
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d: %v", i, errs[i])
		}
		if results[i].StudentID != "" {
			created++
		}
	}
	if created != 1 {
		t.Errorf("%d workers created a student, want exactly 1", created)
	}
	if students := store.studentsFor("APP-aaa"); len(students) != 1 {
		t.Errorf("got %d students after concurrent accepts, want 1", len(students))
	}
}

func TestSetStatusPropagatesStoreError(t *testing.T) {
	store := &erroringStore{err: errors.New("connection reset")}
	svc := newTestService(store)

	_, err := svc.SetStatus(context.Background(), "APP-aaa", "Accepted")
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("SetStatus error = %v, want wrapped store error", err)
	}
}

type erroringStore struct {
	err error
}

func (s *erroringStore) InTx(ctx context.Context, fn func(tx repository.AdmissionTx) error) error {
	return s.err
}

func TestPickPlacementClass(t *testing.T) {
	tests := []struct {
		name    string
		classes []model.Class
		wantID  string
		wantOK  bool
	}{
		{
			name:   "no classes",
			wantOK: false,
		},
		{
			name:    "single class",
			classes: []model.Class{{ID: "KLS-9", Name: "9B"}},
			wantID:  "KLS-9",
			wantOK:  true,
		},
		{
			name: "alphabetically first wins regardless of order",
			classes: []model.Class{
				{ID: "KLS-3", Name: "8A"},
				{ID: "KLS-1", Name: "7A"},
				{ID: "KLS-2", Name: "7B"},
			},
			wantID: "KLS-1",
			wantOK: true,
		},
		{
			name: "name tie broken by smaller id",
			classes: []model.Class{
				{ID: "KLS-8", Name: "7A"},
				{ID: "KLS-2", Name: "7A"},
			},
			wantID: "KLS-2",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickPlacementClass(tt.classes)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.ID != tt.wantID {
				t.Errorf("picked class %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}
