// Package ems declares the EMS backend resources the portal edits and the
// per-resource stores wrapping them. Entities are plain records owned by
// the backend; the portal holds only the most-recently-fetched copy and
// never computes derived state locally. Timestamps stay as the backend's
// serialized strings.
package ems

type (
	// AcademicSession is a school year (e.g. "2025-2026").
	AcademicSession struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		StartDate string `json:"start_date,omitempty"`
		EndDate   string `json:"end_date,omitempty"`
		IsActive  bool   `json:"is_active"`
		CreatedAt string `json:"created_at,omitempty"`
		UpdatedAt string `json:"updated_at,omitempty"`
	}

	// Level groups grades (e.g. Primary, Secondary, Hifz).
	Level struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		Code      string `json:"code,omitempty"`
		SortOrder int    `json:"sort_order,omitempty"`
		IsActive  bool   `json:"is_active"`
		CreatedAt string `json:"created_at,omitempty"`
		UpdatedAt string `json:"updated_at,omitempty"`
	}

	// Grade is a class within a level (e.g. Class 1).
	Grade struct {
		ID        int    `json:"id"`
		LevelID   int    `json:"level_id"`
		Name      string `json:"name"`
		Code      string `json:"code,omitempty"`
		SortOrder int    `json:"sort_order,omitempty"`
		IsActive  bool   `json:"is_active"`
		CreatedAt string `json:"created_at,omitempty"`
		UpdatedAt string `json:"updated_at,omitempty"`

		// embedded with ?with=level
		Level *Level `json:"level,omitempty"`
	}

	Subject struct {
		ID        int    `json:"id"`
		GradeID   int    `json:"grade_id"`
		Name      string `json:"name"`
		Code      string `json:"code,omitempty"`
		IsActive  bool   `json:"is_active"`
		CreatedAt string `json:"created_at,omitempty"`
		UpdatedAt string `json:"updated_at,omitempty"`

		Grade *Grade `json:"grade,omitempty"`
	}

	// Section splits a session grade (e.g. "A", "B").
	Section struct {
		ID             int    `json:"id"`
		SessionGradeID int    `json:"session_grade_id"`
		Name           string `json:"name"`
		Capacity       int    `json:"capacity,omitempty"`
		CreatedAt      string `json:"created_at,omitempty"`
		UpdatedAt      string `json:"updated_at,omitempty"`
	}

	// Fee is a billable item; recurring fees carry a cycle.
	Fee struct {
		ID             int    `json:"id"`
		Name           string `json:"name"`
		BillingType    string `json:"billing_type"` // one_time | recurring
		RecurringCycle string `json:"recurring_cycle,omitempty"`
		SortOrder      int    `json:"sort_order,omitempty"`
		IsActive       bool   `json:"is_active"`
		CreatedAt      string `json:"created_at,omitempty"`
		UpdatedAt      string `json:"updated_at,omitempty"`
	}

	// SessionFee binds a fee to a session grade with an amount.
	SessionFee struct {
		ID                int     `json:"id"`
		AcademicSessionID int     `json:"academic_session_id"`
		GradeID           int     `json:"grade_id"`
		FeeID             int     `json:"fee_id"`
		Amount            float64 `json:"amount"`
		CreatedAt         string  `json:"created_at,omitempty"`
		UpdatedAt         string  `json:"updated_at,omitempty"`

		Fee   *Fee             `json:"fee,omitempty"`
		Grade *Grade           `json:"grade,omitempty"`
		Sess  *AcademicSession `json:"academic_session,omitempty"`
	}

	// SessionGrade opens a grade for a session, with optional capacity.
	SessionGrade struct {
		ID                int    `json:"id"`
		AcademicSessionID int    `json:"academic_session_id"`
		GradeID           int    `json:"grade_id"`
		Capacity          int    `json:"capacity,omitempty"`
		CreatedAt         string `json:"created_at,omitempty"`
		UpdatedAt         string `json:"updated_at,omitempty"`

		Grade *Grade `json:"grade,omitempty"`
	}

	// SessionSubject opens a subject for a session.
	SessionSubject struct {
		ID        int    `json:"id"`
		SessionID int    `json:"session_id"`
		SubjectID int    `json:"subject_id"`
		CreatedAt string `json:"created_at,omitempty"`
		UpdatedAt string `json:"updated_at,omitempty"`

		Subject *Subject `json:"subject,omitempty"`
	}

	AdmissionApplication struct {
		ID                int    `json:"id"`
		ApplicationNo     string `json:"application_no"`
		AcademicSessionID int    `json:"academic_session_id"`
		SessionGradeID    int    `json:"session_grade_id"`
		Type              string `json:"type,omitempty"` // new | re_admission
		Status            string `json:"status"`         // pending | accepted | rejected | admitted
		StudentName       string `json:"student_name"`
		GuardianName      string `json:"guardian_name,omitempty"`
		GuardianPhone     string `json:"guardian_phone,omitempty"`
		CreatedAt         string `json:"created_at,omitempty"`
		UpdatedAt         string `json:"updated_at,omitempty"`

		SessionGrade *SessionGrade `json:"session_grade,omitempty"`
	}

	Student struct {
		ID                int    `json:"id"`
		UserID            int    `json:"user_id,omitempty"`
		Name              string `json:"name"`
		Gender            string `json:"gender,omitempty"`
		Status            string `json:"status,omitempty"` // active | tc_issued | ...
		ResidentialType   string `json:"residential_type,omitempty"`
		AcademicSessionID int    `json:"academic_session_id,omitempty"`
		SessionGradeID    int    `json:"session_grade_id,omitempty"`
		SectionID         int    `json:"section_id,omitempty"`
		RollNo            string `json:"roll_no,omitempty"`
		PhotoPath         string `json:"photo_path,omitempty"`
		PhotoURL          string `json:"photo_url,omitempty"`
		CreatedAt         string `json:"created_at,omitempty"`
		UpdatedAt         string `json:"updated_at,omitempty"`

		PresentAddress   *AddressJSON        `json:"present_address,omitempty"`
		PermanentAddress *AddressJSON        `json:"permanent_address,omitempty"`
		User             *User               `json:"user,omitempty"`
		Enrollments      []StudentEnrollment `json:"enrollments,omitempty"`
	}

	// StudentEnrollment records one session's placement of a student.
	StudentEnrollment struct {
		ID                int    `json:"id"`
		StudentID         int    `json:"student_id"`
		AcademicSessionID int    `json:"academic_session_id"`
		SessionGradeID    int    `json:"session_grade_id"`
		SectionID         int    `json:"section_id,omitempty"`
		RollNo            string `json:"roll_no,omitempty"`
		Remarks           string `json:"remarks,omitempty"`
		CreatedAt         string `json:"created_at,omitempty"`
	}

	// StudentFee assigns a session fee to a student, optionally discounted.
	StudentFee struct {
		ID             int     `json:"id"`
		StudentID      int     `json:"student_id"`
		SessionFeeID   int     `json:"session_fee_id"`
		DiscountAmount float64 `json:"discount_amount,omitempty"`
		Status         string  `json:"status,omitempty"`
		CreatedAt      string  `json:"created_at,omitempty"`
		UpdatedAt      string  `json:"updated_at,omitempty"`

		SessionFee *SessionFee `json:"session_fee,omitempty"`
	}

	FeeInvoice struct {
		ID            int              `json:"id"`
		InvoiceNo     string           `json:"invoice_no,omitempty"`
		StudentID     int              `json:"student_id"`
		Month         string           `json:"month,omitempty"`
		Status        string           `json:"status,omitempty"` // pending | partial | paid
		TotalAmount   float64          `json:"total_amount"`
		TotalDiscount float64          `json:"total_discount"`
		PayableAmount float64          `json:"payable_amount"`
		CreatedAt     string           `json:"created_at,omitempty"`
		UpdatedAt     string           `json:"updated_at,omitempty"`

		Student *Student         `json:"student,omitempty"`
		Items   []FeeInvoiceItem `json:"items,omitempty"`
	}

	FeeInvoiceItem struct {
		ID             int     `json:"id"`
		FeeInvoiceID   int     `json:"fee_invoice_id"`
		StudentFeeID   int     `json:"student_fee_id"`
		Amount         float64 `json:"amount"`
		DiscountAmount float64 `json:"discount_amount"`
		NetAmount      float64 `json:"net_amount"`

		StudentFee *StudentFee `json:"student_fee,omitempty"`
	}

	Payment struct {
		ID           int     `json:"id"`
		StudentID    int     `json:"student_id"`
		FeeInvoiceID int     `json:"fee_invoice_id,omitempty"`
		PaymentDate  string  `json:"payment_date"`
		Method       string  `json:"method"`
		Amount       float64 `json:"amount"`
		Status       string  `json:"status,omitempty"` // pending | completed | failed | refunded
		ReferenceNo  string  `json:"reference_no,omitempty"`
		CreatedAt    string  `json:"created_at,omitempty"`
		UpdatedAt    string  `json:"updated_at,omitempty"`

		Student *Student    `json:"student,omitempty"`
		Invoice *FeeInvoice `json:"fee_invoice,omitempty"`
	}

	// User is a portal account (staff, guardian or student login).
	User struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		Phone     string `json:"phone,omitempty"`
		Email     string `json:"email,omitempty"`
		Role      string `json:"role,omitempty"`
		Photo     string `json:"photo,omitempty"`
		IsActive  bool   `json:"is_active"`
		CreatedAt string `json:"created_at,omitempty"`
		UpdatedAt string `json:"updated_at,omitempty"`
	}
)

func (e AcademicSession) EntityID() int      { return e.ID }
func (e Level) EntityID() int                { return e.ID }
func (e Grade) EntityID() int                { return e.ID }
func (e Subject) EntityID() int              { return e.ID }
func (e Section) EntityID() int              { return e.ID }
func (e Fee) EntityID() int                  { return e.ID }
func (e SessionFee) EntityID() int           { return e.ID }
func (e SessionGrade) EntityID() int         { return e.ID }
func (e SessionSubject) EntityID() int       { return e.ID }
func (e AdmissionApplication) EntityID() int { return e.ID }
func (e Student) EntityID() int              { return e.ID }
func (e StudentFee) EntityID() int           { return e.ID }
func (e FeeInvoice) EntityID() int           { return e.ID }
func (e Payment) EntityID() int              { return e.ID }
func (e User) EntityID() int                 { return e.ID }
