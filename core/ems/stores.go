package ems

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/ihsanems/portal/core/store"
	"github.com/ihsanems/portal/services/emsapi"
)

// Per-resource constructors bind each backend collection to its endpoint
// and error nouns. Filter dimensions go through Store.Query (q, is_active,
// level_id, status, ...); the backend ignores parameters it does not know.

func NewSessionStore(c *emsapi.Client) *store.Store[AcademicSession] {
	return store.New[AcademicSession](c, "/v1/sessions", "sessions", "session")
}

func NewLevelStore(c *emsapi.Client) *store.Store[Level] {
	return store.New[Level](c, "/v1/levels", "levels", "level")
}

func NewGradeStore(c *emsapi.Client) *store.Store[Grade] {
	return store.New[Grade](c, "/v1/grades", "grades", "grade")
}

func NewSubjectStore(c *emsapi.Client) *store.Store[Subject] {
	return store.New[Subject](c, "/v1/subjects", "subjects", "subject")
}

func NewSectionStore(c *emsapi.Client) *store.Store[Section] {
	return store.New[Section](c, "/v1/sections", "sections", "section")
}

func NewFeeStore(c *emsapi.Client) *store.Store[Fee] {
	return store.New[Fee](c, "/v1/fees", "fees", "fee")
}

func NewSessionFeeStore(c *emsapi.Client) *store.Store[SessionFee] {
	return store.New[SessionFee](c, "/v1/session-fees", "session fees", "session fee")
}

func NewSessionGradeStore(c *emsapi.Client) *store.Store[SessionGrade] {
	return store.New[SessionGrade](c, "/v1/session-grades", "session grades", "session grade")
}

func NewSessionSubjectStore(c *emsapi.Client) *store.Store[SessionSubject] {
	return store.New[SessionSubject](c, "/v1/session-subjects", "session subjects", "session subject")
}

func NewStudentFeeStore(c *emsapi.Client) *store.Store[StudentFee] {
	return store.New[StudentFee](c, "/v1/student-fees", "student fees", "student fee")
}

func NewPaymentStore(c *emsapi.Client) *store.Store[Payment] {
	return store.New[Payment](c, "/v1/payments", "payments", "payment")
}

func NewUserStore(c *emsapi.Client) *store.Store[User] {
	return store.New[User](c, "/v1/users", "users", "user")
}

// StudentStore layers the student-specific actions over the generic CRUD
// set. Actions that return the updated student sync it back into the list.
type StudentStore struct {
	*store.Store[Student]
}

func NewStudentStore(c *emsapi.Client) *StudentStore {
	return &StudentStore{store.New[Student](c, "/v1/students", "students", "student")}
}

// StudentStats is the students dashboard aggregate.
type StudentStats struct {
	Total    int            `json:"total"`
	Active   int            `json:"active"`
	TCIssued int            `json:"tc_issued"`
	ByGender map[string]int `json:"by_gender,omitempty"`
	ByGrade  map[string]int `json:"by_grade,omitempty"`
}

func (s *StudentStore) Stats(ctx context.Context) (*StudentStats, error) {
	var stats StudentStats
	if err := s.Client().Get(ctx, s.Endpoint()+"/stats", nil, &stats); err != nil {
		return nil, s.Fail(err, "Failed to load student stats")
	}
	return &stats, nil
}

func (s *StudentStore) Transfer(ctx context.Context, id int, data TransferStudent) (Student, error) {
	var zero Student
	var raw json.RawMessage
	if err := s.Client().Post(ctx, s.ItemPath(id)+"/transfer", data, &raw); err != nil {
		return zero, s.Fail(err, "Failed to transfer student")
	}
	var obj Student
	if err := emsapi.DecodeEntity(raw, &obj); err != nil {
		return zero, s.Fail(err, "Failed to transfer student")
	}
	s.ReplaceItem(obj)
	return obj, nil
}

// BulkPromote enrolls the selected students into the target session grade.
// The list is stale afterwards; callers refetch.
func (s *StudentStore) BulkPromote(ctx context.Context, data BulkPromote) error {
	if err := s.Client().Post(ctx, s.Endpoint()+"/bulk-promote", data, nil); err != nil {
		return s.Fail(err, "Failed to promote students")
	}
	return nil
}

func (s *StudentStore) BulkUpdateStatus(ctx context.Context, data BulkStatus) error {
	if err := s.Client().Post(ctx, s.Endpoint()+"/bulk-status", data, nil); err != nil {
		return s.Fail(err, "Failed to update student status")
	}
	return nil
}

func (s *StudentStore) IssueTC(ctx context.Context, id int, data IssueTC) (Student, error) {
	var zero Student
	var raw json.RawMessage
	if err := s.Client().Post(ctx, s.ItemPath(id)+"/issue-tc", data, &raw); err != nil {
		return zero, s.Fail(err, "Failed to issue transfer certificate")
	}
	var obj Student
	if err := emsapi.DecodeEntity(raw, &obj); err != nil {
		return zero, s.Fail(err, "Failed to issue transfer certificate")
	}
	s.ReplaceItem(obj)
	return obj, nil
}

func (s *StudentStore) Enrollments(ctx context.Context, id int) ([]StudentEnrollment, error) {
	var res struct {
		Data []StudentEnrollment `json:"data"`
	}
	if err := s.Client().Get(ctx, s.ItemPath(id)+"/enrollments", nil, &res); err != nil {
		return nil, s.Fail(err, "Failed to load enrollments")
	}
	return res.Data, nil
}

func (s *StudentStore) CreateAccount(ctx context.Context, id int, data CreateStudentAccount) (Student, error) {
	var zero Student
	var raw json.RawMessage
	if err := s.Client().Post(ctx, s.ItemPath(id)+"/create-account", data, &raw); err != nil {
		return zero, s.Fail(err, "Failed to create student account")
	}
	var obj Student
	if err := emsapi.DecodeEntity(raw, &obj); err != nil {
		return zero, s.Fail(err, "Failed to create student account")
	}
	s.ReplaceItem(obj)
	return obj, nil
}

// AdmissionStore layers the admission workflow over the generic CRUD set.
type AdmissionStore struct {
	*store.Store[AdmissionApplication]
}

func NewAdmissionStore(c *emsapi.Client) *AdmissionStore {
	return &AdmissionStore{store.New[AdmissionApplication](c, "/v1/admission-applications", "applications", "application")}
}

// AdmissionStats is the per-status application count for the dashboard.
type AdmissionStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Admitted int `json:"admitted"`
}

func (s *AdmissionStore) Stats(ctx context.Context) (*AdmissionStats, error) {
	var stats AdmissionStats
	if err := s.Client().Get(ctx, s.Endpoint()+"/stats", nil, &stats); err != nil {
		return nil, s.Fail(err, "Failed to load admission stats")
	}
	return &stats, nil
}

// Admit converts an accepted application into an enrolled student and
// syncs the application's new status back into the list.
func (s *AdmissionStore) Admit(ctx context.Context, id int, data AdmitApplication) (AdmissionApplication, error) {
	var zero AdmissionApplication
	var raw json.RawMessage
	if err := s.Client().Post(ctx, s.ItemPath(id)+"/admit", data, &raw); err != nil {
		return zero, s.Fail(err, "Failed to admit application")
	}
	var obj AdmissionApplication
	if err := emsapi.DecodeEntity(raw, &obj); err != nil {
		return zero, s.Fail(err, "Failed to admit application")
	}
	s.ReplaceItem(obj)
	return obj, nil
}

// InvoiceStore layers batch invoicing and reporting over the generic set.
type InvoiceStore struct {
	*store.Store[FeeInvoice]
}

func NewInvoiceStore(c *emsapi.Client) *InvoiceStore {
	return &InvoiceStore{store.New[FeeInvoice](c, "/v1/fee-invoices", "invoices", "invoice")}
}

// StudentInvoices lists a student's invoices without touching the main
// list state.
func (s *InvoiceStore) StudentInvoices(ctx context.Context, studentID int) ([]FeeInvoice, error) {
	var res struct {
		Data []FeeInvoice `json:"data"`
	}
	query := s.ListQuery(map[string]string{"student_id": strconv.Itoa(studentID)})
	if err := s.Client().Get(ctx, s.Endpoint(), query, &res); err != nil {
		return nil, s.Fail(err, "Failed to load student invoices")
	}
	return res.Data, nil
}

// GenerateMonthlyResult reports what the batch run produced.
type GenerateMonthlyResult struct {
	Generated int    `json:"generated"`
	Skipped   int    `json:"skipped"`
	Month     string `json:"month"`
}

func (s *InvoiceStore) GenerateMonthly(ctx context.Context, data GenerateMonthlyInvoices) (*GenerateMonthlyResult, error) {
	var res GenerateMonthlyResult
	if err := s.Client().Post(ctx, s.Endpoint()+"/generate-monthly", data, &res); err != nil {
		return nil, s.Fail(err, "Failed to generate invoices")
	}
	return &res, nil
}

// DashboardSummary is the fee collection aggregate for the dashboard.
type DashboardSummary struct {
	TotalInvoiced  float64 `json:"total_invoiced"`
	TotalCollected float64 `json:"total_collected"`
	TotalDue       float64 `json:"total_due"`
	InvoiceCount   int     `json:"invoice_count"`
	PaidCount      int     `json:"paid_count"`
	PendingCount   int     `json:"pending_count"`
}

func (s *InvoiceStore) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := s.Client().Get(ctx, s.Endpoint()+"/dashboard-summary", nil, &summary); err != nil {
		return nil, s.Fail(err, "Failed to load dashboard summary")
	}
	return &summary, nil
}
