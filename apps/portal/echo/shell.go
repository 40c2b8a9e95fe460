package echoportal

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ihsanems/portal/core/ems"
	"github.com/ihsanems/portal/core/session"
	"github.com/ihsanems/portal/core/store"
	"github.com/ihsanems/portal/core/tenant"
)

// The shell is deliberately minimal: tenant branding in the head, the
// authenticated user in the top bar and a flat item list per page. Rich
// views live in the browser; the server only proves the data path.
var shellTmpl = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="{{if .Head.Lang}}{{.Head.Lang}}{{else}}en{{end}}">
<head>
<meta charset="utf-8">
<title>{{.Head.Title}}</title>
{{if .Head.Favicon}}<link rel="icon" href="{{.Head.Favicon}}">{{end}}
<style>:root{{"{"}}{{range $name, $val := .Head.CSSVars}}{{$name}}:{{$val}};{{end}}{{"}"}}</style>
</head>
<body>
<header>
<h1>{{.Page}}</h1>
{{if .User}}<p>{{.User.Name}} ({{.User.Role}})</p>{{end}}
{{if .Err}}<p class="error">{{.Err}}</p>{{end}}
</header>
<main>
<ul>
{{range .Items}}<li><strong>{{.Title}}</strong>{{if .Note}} {{.Note}}{{end}}</li>
{{end}}</ul>
</main>
</body>
</html>
`))

type (
	shellItem struct {
		Title string
		Note  string
	}

	shellData struct {
		Head  tenant.PageHead
		User  *session.User
		Page  string
		Err   string
		Items []shellItem
	}
)

func (s *server) render(ctx echo.Context, data shellData) error {
	sc := s.scope(ctx)
	data.Head = tenant.HeadFor(sc.tenant.Meta)
	if data.User == nil {
		data.User = sc.session.User
	}

	var buf bytes.Buffer
	if err := shellTmpl.Execute(&buf, data); err != nil {
		return errors.Wrap(err, "rendering shell")
	}
	return ctx.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (s *server) dashboardPage(ctx echo.Context) error {
	sc := s.scope(ctx)
	reqCtx := ctx.Request().Context()
	data := shellData{Page: "Dashboard"}

	invoices := ems.NewInvoiceStore(sc.api)
	if summary, err := invoices.DashboardSummary(reqCtx); err == nil {
		data.Items = append(data.Items,
			shellItem{"Invoiced", strconv.FormatFloat(summary.TotalInvoiced, 'f', 2, 64)},
			shellItem{"Collected", strconv.FormatFloat(summary.TotalCollected, 'f', 2, 64)},
			shellItem{"Due", strconv.FormatFloat(summary.TotalDue, 'f', 2, 64)},
		)
	} else {
		data.Err = invoices.Err
	}

	students := ems.NewStudentStore(sc.api)
	if stats, err := students.Stats(reqCtx); err == nil {
		data.Items = append(data.Items,
			shellItem{"Students", strconv.Itoa(stats.Total)},
			shellItem{"Active", strconv.Itoa(stats.Active)},
		)
	}
	return s.render(ctx, data)
}

func (s *server) studentsPage(ctx echo.Context) error {
	sc := s.scope(ctx)
	students := ems.NewStudentStore(sc.api)
	bindListParams(ctx, &students.Query, "q", "status", "gender", "session_grade_id", "section_id")

	data := shellData{Page: "Students"}
	if _, err := students.FetchList(ctx.Request().Context()); err != nil {
		data.Err = students.Err
	}
	for _, student := range students.Items {
		data.Items = append(data.Items, shellItem{student.Name, student.Status})
	}
	return s.render(ctx, data)
}

func (s *server) admissionsPage(ctx echo.Context) error {
	sc := s.scope(ctx)
	admissions := ems.NewAdmissionStore(sc.api)
	bindListParams(ctx, &admissions.Query, "q", "status", "academic_session_id")

	data := shellData{Page: "Admissions"}
	if _, err := admissions.FetchList(ctx.Request().Context()); err != nil {
		data.Err = admissions.Err
	}
	for _, app := range admissions.Items {
		data.Items = append(data.Items, shellItem{app.StudentName, app.Status})
	}
	return s.render(ctx, data)
}

func (s *server) invoicesPage(ctx echo.Context) error {
	sc := s.scope(ctx)
	invoices := ems.NewInvoiceStore(sc.api)
	bindListParams(ctx, &invoices.Query, "student_id", "status", "month")

	data := shellData{Page: "Invoices"}
	if _, err := invoices.FetchList(ctx.Request().Context()); err != nil {
		data.Err = invoices.Err
	}
	for _, inv := range invoices.Items {
		data.Items = append(data.Items, shellItem{inv.InvoiceNo, inv.Status})
	}
	return s.render(ctx, data)
}

func (s *server) adminPage(ctx echo.Context) error {
	return s.render(ctx, shellData{Page: "Admin"})
}

func (s *server) institutePage(ctx echo.Context) error {
	sc := s.scope(ctx)
	institute := tenant.NewInstituteService(sc.api, sc.jar, s.deps.Conf)

	data := shellData{Page: "Institute"}
	profile, err := institute.FetchProfile(ctx.Request().Context(), false)
	if err != nil {
		data.Err = institute.Err
		return s.render(ctx, data)
	}
	if profile.Names != nil && profile.Names.EN != "" {
		data.Items = append(data.Items, shellItem{"Name", profile.Names.EN})
	}
	if profile.Contact.Address != "" {
		data.Items = append(data.Items, shellItem{"Address", profile.Contact.Address})
	}
	if profile.Contact.Phone != "" {
		data.Items = append(data.Items, shellItem{"Phone", profile.Contact.Phone})
	}
	if profile.Contact.Email != "" {
		data.Items = append(data.Items, shellItem{"Email", profile.Contact.Email})
	}
	return s.render(ctx, data)
}

func (s *server) usersPage(ctx echo.Context) error {
	sc := s.scope(ctx)
	users := ems.NewUserStore(sc.api)
	bindListParams(ctx, &users.Query, "q", "role")

	data := shellData{Page: "Users"}
	if _, err := users.FetchList(ctx.Request().Context()); err != nil {
		data.Err = users.Err
	}
	for _, usr := range users.Items {
		data.Items = append(data.Items, shellItem{usr.Name, usr.Role})
	}
	return s.render(ctx, data)
}

// bindListParams copies the whitelisted query params into the store query;
// page/per_page are bound last so filter setters cannot reset them.
func bindListParams(ctx echo.Context, query *store.Query, fields ...string) {
	for _, field := range fields {
		if val := ctx.QueryParam(field); val != "" {
			query.Set(field, val)
		}
	}
	if perPage, err := strconv.Atoi(ctx.QueryParam("per_page")); err == nil {
		query.SetPerPage(perPage)
	}
	if page, err := strconv.Atoi(ctx.QueryParam("page")); err == nil {
		query.SetPage(page)
	}
}
