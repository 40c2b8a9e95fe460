package ems

import (
	"github.com/go-playground/validator/v10"
)

type (
	NewAcademicSession struct {
		Name      string `json:"name" validate:"required"`
		StartDate string `json:"start_date,omitempty"`
		EndDate   string `json:"end_date,omitempty"`
		IsActive  *bool  `json:"is_active,omitempty"`
	}
	UpdateAcademicSession struct {
		Name      string `json:"name,omitempty"`
		StartDate string `json:"start_date,omitempty"`
		EndDate   string `json:"end_date,omitempty"`
		IsActive  *bool  `json:"is_active,omitempty"`
	}

	NewLevel struct {
		Name      string `json:"name" validate:"required"`
		Code      string `json:"code,omitempty" validate:"omitempty,alphanum_"`
		SortOrder int    `json:"sort_order,omitempty"`
		IsActive  *bool  `json:"is_active,omitempty"`
	}
	UpdateLevel struct {
		Name      string `json:"name,omitempty"`
		Code      string `json:"code,omitempty" validate:"omitempty,alphanum_"`
		SortOrder int    `json:"sort_order,omitempty"`
		IsActive  *bool  `json:"is_active,omitempty"`
	}

	NewGrade struct {
		LevelID   int    `json:"level_id" validate:"required"`
		Name      string `json:"name" validate:"required"`
		Code      string `json:"code,omitempty" validate:"omitempty,alphanum_"`
		SortOrder int    `json:"sort_order,omitempty"`
		IsActive  *bool  `json:"is_active,omitempty"`
	}
	UpdateGrade struct {
		LevelID   int    `json:"level_id,omitempty"`
		Name      string `json:"name,omitempty"`
		Code      string `json:"code,omitempty" validate:"omitempty,alphanum_"`
		SortOrder int    `json:"sort_order,omitempty"`
		IsActive  *bool  `json:"is_active,omitempty"`
	}

	NewSubject struct {
		GradeID  int    `json:"grade_id" validate:"required"`
		Name     string `json:"name" validate:"required"`
		Code     string `json:"code,omitempty" validate:"omitempty,alphanum_"`
		IsActive *bool  `json:"is_active,omitempty"`
	}
	UpdateSubject struct {
		GradeID  int    `json:"grade_id,omitempty"`
		Name     string `json:"name,omitempty"`
		Code     string `json:"code,omitempty" validate:"omitempty,alphanum_"`
		IsActive *bool  `json:"is_active,omitempty"`
	}

	NewSection struct {
		SessionGradeID int    `json:"session_grade_id" validate:"required"`
		Name           string `json:"name" validate:"required"`
		Capacity       int    `json:"capacity,omitempty" validate:"omitempty,min=1"`
	}
	UpdateSection struct {
		Name     string `json:"name,omitempty"`
		Capacity int    `json:"capacity,omitempty" validate:"omitempty,min=1"`
	}

	NewFee struct {
		Name           string `json:"name" validate:"required"`
		BillingType    string `json:"billing_type" validate:"required,oneof=one_time recurring"`
		RecurringCycle string `json:"recurring_cycle,omitempty" validate:"omitempty,oneof=monthly yearly term"`
		SortOrder      int    `json:"sort_order,omitempty"`
		IsActive       *bool  `json:"is_active,omitempty"`
	}
	UpdateFee struct {
		Name           string `json:"name,omitempty"`
		BillingType    string `json:"billing_type,omitempty" validate:"omitempty,oneof=one_time recurring"`
		RecurringCycle string `json:"recurring_cycle,omitempty" validate:"omitempty,oneof=monthly yearly term"`
		SortOrder      int    `json:"sort_order,omitempty"`
		IsActive       *bool  `json:"is_active,omitempty"`
	}

	NewSessionFee struct {
		AcademicSessionID int     `json:"academic_session_id" validate:"required"`
		GradeID           int     `json:"grade_id" validate:"required"`
		FeeID             int     `json:"fee_id" validate:"required"`
		Amount            float64 `json:"amount" validate:"required,gt=0"`
	}
	UpdateSessionFee struct {
		Amount float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	}

	NewSessionGrade struct {
		AcademicSessionID int `json:"academic_session_id" validate:"required"`
		GradeID           int `json:"grade_id" validate:"required"`
		Capacity          int `json:"capacity,omitempty" validate:"omitempty,min=1"`
	}
	UpdateSessionGrade struct {
		Capacity int `json:"capacity,omitempty" validate:"omitempty,min=1"`
	}

	NewSessionSubject struct {
		SessionID int `json:"session_id" validate:"required"`
		SubjectID int `json:"subject_id" validate:"required"`
	}

	NewAdmission struct {
		AcademicSessionID int    `json:"academic_session_id" validate:"required"`
		SessionGradeID    int    `json:"session_grade_id" validate:"required"`
		Type              string `json:"type,omitempty" validate:"omitempty,oneof=new re_admission"`
		StudentName       string `json:"student_name" validate:"required"`
		Gender            string `json:"gender,omitempty"`
		GuardianName      string `json:"guardian_name,omitempty"`
		GuardianPhone     string `json:"guardian_phone,omitempty"`
	}
	UpdateAdmission struct {
		SessionGradeID int    `json:"session_grade_id,omitempty"`
		Status         string `json:"status,omitempty" validate:"omitempty,oneof=pending accepted rejected admitted"`
		StudentName    string `json:"student_name,omitempty"`
		GuardianName   string `json:"guardian_name,omitempty"`
		GuardianPhone  string `json:"guardian_phone,omitempty"`
	}
	// AdmitApplication converts an accepted application into a student.
	AdmitApplication struct {
		SectionID int    `json:"section_id,omitempty"`
		RollNo    string `json:"roll_no,omitempty"`
	}

	NewStudent struct {
		Name              string `json:"name" validate:"required"`
		Gender            string `json:"gender,omitempty"`
		ResidentialType   string `json:"residential_type,omitempty"`
		AcademicSessionID int    `json:"academic_session_id" validate:"required"`
		SessionGradeID    int    `json:"session_grade_id" validate:"required"`
		SectionID         int    `json:"section_id,omitempty"`
		RollNo            string `json:"roll_no,omitempty"`
		GuardianName      string `json:"guardian_name,omitempty"`
		GuardianPhone     string `json:"guardian_phone,omitempty"`

		PresentAddress   *AddressJSON `json:"present_address,omitempty"`
		PermanentAddress *AddressJSON `json:"permanent_address,omitempty"`
	}
	UpdateStudent struct {
		Name            string `json:"name,omitempty"`
		Gender          string `json:"gender,omitempty"`
		Status          string `json:"status,omitempty"`
		ResidentialType string `json:"residential_type,omitempty"`
		SectionID       int    `json:"section_id,omitempty"`
		RollNo          string `json:"roll_no,omitempty"`
		GuardianName    string `json:"guardian_name,omitempty"`
		GuardianPhone   string `json:"guardian_phone,omitempty"`

		PresentAddress   *AddressJSON `json:"present_address,omitempty"`
		PermanentAddress *AddressJSON `json:"permanent_address,omitempty"`
	}

	// TransferStudent moves a student to another session grade/section.
	TransferStudent struct {
		SessionGradeID int    `json:"session_grade_id" validate:"required"`
		SectionID      int    `json:"section_id,omitempty"`
		RollNo         string `json:"roll_no,omitempty"`
		Remarks        string `json:"remarks,omitempty"`
	}

	// BulkPromote enrolls a set of students into the next session's grade.
	BulkPromote struct {
		StudentIDs        []int `json:"student_ids" validate:"required,min=1"`
		AcademicSessionID int   `json:"academic_session_id" validate:"required"`
		SessionGradeID    int   `json:"session_grade_id" validate:"required"`
		SectionID         int   `json:"section_id,omitempty"`
	}

	BulkStatus struct {
		StudentIDs []int  `json:"student_ids" validate:"required,min=1"`
		Status     string `json:"status" validate:"required"`
	}

	// IssueTC issues a transfer certificate and deactivates the student.
	IssueTC struct {
		IssueDate string `json:"issue_date,omitempty"`
		Remarks   string `json:"remarks,omitempty"`
	}

	// CreateStudentAccount provisions a portal login for a student; the
	// password policy is enforced client-side before the request goes out.
	CreateStudentAccount struct {
		Phone    string `json:"phone,omitempty"`
		Email    string `json:"email,omitempty" validate:"omitempty,email"`
		Password string `json:"password" validate:"required"`
	}

	// GenerateMonthlyInvoices kicks the backend's batch invoicing run for a
	// month (YYYY-MM).
	GenerateMonthlyInvoices struct {
		Month             string `json:"month" validate:"required,month"`
		AcademicSessionID int    `json:"academic_session_id,omitempty"`
	}

	NewPayment struct {
		StudentID    int     `json:"student_id" validate:"required"`
		FeeInvoiceID int     `json:"fee_invoice_id,omitempty"`
		PaymentDate  string  `json:"payment_date" validate:"required"`
		Method       string  `json:"method" validate:"required"`
		Amount       float64 `json:"amount" validate:"required,gt=0"`
		ReferenceNo  string  `json:"reference_no,omitempty"`
	}
	UpdatePayment struct {
		PaymentDate string  `json:"payment_date,omitempty"`
		Method      string  `json:"method,omitempty"`
		Amount      float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
		Status      string  `json:"status,omitempty" validate:"omitempty,oneof=pending completed failed refunded"`
		ReferenceNo string  `json:"reference_no,omitempty"`
	}

	NewUser struct {
		Name     string `json:"name" validate:"required"`
		Phone    string `json:"phone,omitempty"`
		Email    string `json:"email,omitempty" validate:"omitempty,email"`
		Role     string `json:"role" validate:"required,emsrole"`
		Password string `json:"password" validate:"required"`
	}
	UpdateUser struct {
		Name     string `json:"name,omitempty"`
		Phone    string `json:"phone,omitempty"`
		Email    string `json:"email,omitempty" validate:"omitempty,email"`
		Role     string `json:"role,omitempty" validate:"omitempty,emsrole"`
		Password string `json:"password,omitempty"`
		IsActive *bool  `json:"is_active,omitempty"`
	}
)

func (d NewAcademicSession) Validate(v *validator.Validate) error    { return v.Struct(d) }
func (d UpdateAcademicSession) Validate(v *validator.Validate) error { return v.Struct(d) }
func (d NewLevel) Validate(v *validator.Validate) error              { return v.Struct(d) }
func (d UpdateLevel) Validate(v *validator.Validate) error           { return v.Struct(d) }
func (d NewGrade) Validate(v *validator.Validate) error              { return v.Struct(d) }
func (d UpdateGrade) Validate(v *validator.Validate) error           { return v.Struct(d) }
func (d NewSubject) Validate(v *validator.Validate) error            { return v.Struct(d) }
func (d UpdateSubject) Validate(v *validator.Validate) error         { return v.Struct(d) }
func (d NewSection) Validate(v *validator.Validate) error            { return v.Struct(d) }
func (d UpdateSection) Validate(v *validator.Validate) error         { return v.Struct(d) }
func (d NewFee) Validate(v *validator.Validate) error                { return v.Struct(d) }
func (d UpdateFee) Validate(v *validator.Validate) error             { return v.Struct(d) }
func (d NewSessionFee) Validate(v *validator.Validate) error         { return v.Struct(d) }
func (d UpdateSessionFee) Validate(v *validator.Validate) error      { return v.Struct(d) }
func (d NewSessionGrade) Validate(v *validator.Validate) error       { return v.Struct(d) }
func (d UpdateSessionGrade) Validate(v *validator.Validate) error    { return v.Struct(d) }
func (d NewSessionSubject) Validate(v *validator.Validate) error     { return v.Struct(d) }
func (d NewAdmission) Validate(v *validator.Validate) error          { return v.Struct(d) }
func (d UpdateAdmission) Validate(v *validator.Validate) error       { return v.Struct(d) }
func (d AdmitApplication) Validate(v *validator.Validate) error      { return v.Struct(d) }
func (d NewStudent) Validate(v *validator.Validate) error            { return v.Struct(d) }
func (d UpdateStudent) Validate(v *validator.Validate) error         { return v.Struct(d) }
func (d TransferStudent) Validate(v *validator.Validate) error       { return v.Struct(d) }
func (d BulkPromote) Validate(v *validator.Validate) error           { return v.Struct(d) }
func (d BulkStatus) Validate(v *validator.Validate) error            { return v.Struct(d) }
func (d IssueTC) Validate(v *validator.Validate) error               { return v.Struct(d) }
func (d CreateStudentAccount) Validate(v *validator.Validate) error  { return v.Struct(d) }
func (d GenerateMonthlyInvoices) Validate(v *validator.Validate) error {
	return v.Struct(d)
}
func (d NewPayment) Validate(v *validator.Validate) error    { return v.Struct(d) }
func (d UpdatePayment) Validate(v *validator.Validate) error { return v.Struct(d) }
func (d NewUser) Validate(v *validator.Validate) error       { return v.Struct(d) }
func (d UpdateUser) Validate(v *validator.Validate) error    { return v.Struct(d) }
