package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/ihsanems/portal/core"
	"github.com/ihsanems/portal/core/session"
	"github.com/ihsanems/portal/core/tenant"
	"github.com/ihsanems/portal/services/emsapi"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf *core.Config
	jar  session.Jar
	out  io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -tenant DOMAIN -identifier PHONE|EMAIL - log in; the password will be prompted next")
	fmt.Fprintln(cli.out, "  me -tenant DOMAIN                            - show the authenticated profile")
	fmt.Fprintln(cli.out, "  logout -tenant DOMAIN [-all]                 - revoke the current token (or all tokens)")
	fmt.Fprintln(cli.out, "  tenant -tenant DOMAIN [-refresh]             - show tenant metadata")
	fmt.Fprintln(cli.out, "  students -tenant DOMAIN [-q TEXT] [-page N]  - list students")
	fmt.Fprintln(cli.out, "  grades -tenant DOMAIN [-q TEXT]              - list grades")
}

// clients wires the per-invocation dependency graph for one tenant, the
// same graph the portal builds per request.
func (cli *commandLine) clients(domain string) (pub, api *emsapi.Client, mgr *session.Manager) {
	resolver := tenant.StaticResolver{Domain: domain}
	tokens := session.NewTokenStore(cli.jar)
	pub = emsapi.New(cli.conf, resolver)
	api = emsapi.NewAuth(cli.conf, resolver, tokens)
	mgr = session.NewManager(tokens, pub, api)
	mgr.Init()
	return pub, api, mgr
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginTenant := loginCmd.String("tenant", "", "The tenant domain.")
	loginIdentifier := loginCmd.String("identifier", "", "The user's phone or email. The password will be prompted next.")

	meCmd := flag.NewFlagSet("me", flag.ExitOnError)
	meTenant := meCmd.String("tenant", "", "The tenant domain.")

	logoutCmd := flag.NewFlagSet("logout", flag.ExitOnError)
	logoutTenant := logoutCmd.String("tenant", "", "The tenant domain.")
	logoutAll := logoutCmd.Bool("all", false, "Revoke every token issued to the user.")

	tenantCmd := flag.NewFlagSet("tenant", flag.ExitOnError)
	tenantTenant := tenantCmd.String("tenant", "", "The tenant domain.")
	tenantRefresh := tenantCmd.Bool("refresh", false, "Bypass the cached metadata.")

	studentsCmd := flag.NewFlagSet("students", flag.ExitOnError)
	studentsTenant := studentsCmd.String("tenant", "", "The tenant domain.")
	studentsQ := studentsCmd.String("q", "", "Search text.")
	studentsPage := studentsCmd.Int("page", 1, "Page number.")

	gradesCmd := flag.NewFlagSet("grades", flag.ExitOnError)
	gradesTenant := gradesCmd.String("tenant", "", "The tenant domain.")
	gradesQ := gradesCmd.String("q", "", "Search text.")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginTenant == "" || *loginIdentifier == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginTenant, *loginIdentifier, string(pwd))
	case "me":
		if err := meCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *meTenant == "" {
			meCmd.Usage()
			return errHelp
		}
		return cli.me(*meTenant)
	case "logout":
		if err := logoutCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *logoutTenant == "" {
			logoutCmd.Usage()
			return errHelp
		}
		return cli.logout(*logoutTenant, *logoutAll)
	case "tenant":
		if err := tenantCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *tenantTenant == "" {
			tenantCmd.Usage()
			return errHelp
		}
		return cli.tenant(*tenantTenant, *tenantRefresh)
	case "students":
		if err := studentsCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *studentsTenant == "" {
			studentsCmd.Usage()
			return errHelp
		}
		return cli.students(*studentsTenant, *studentsQ, *studentsPage)
	case "grades":
		if err := gradesCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *gradesTenant == "" {
			gradesCmd.Usage()
			return errHelp
		}
		return cli.grades(*gradesTenant, *gradesQ)
	default:
		cli.printUsage()
		return errHelp
	}
}
