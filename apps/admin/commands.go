package main

import (
	"context"
	"fmt"

	"github.com/ihsanems/portal/core/ems"
	"github.com/ihsanems/portal/core/tenant"
)

func (cli *commandLine) login(domain, identifier, pwd string) error {
	_, _, mgr := cli.clients(domain)

	ctx := context.Background()
	usr, err := mgr.Login(ctx, identifier, pwd, "admin-cli")
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Logged in as %s (%s)\n", usr.Name, usr.Role)
	return nil
}

func (cli *commandLine) me(domain string) error {
	_, _, mgr := cli.clients(domain)

	usr, err := mgr.FetchMe(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "ID:    %d\n", usr.ID)
	fmt.Fprintf(cli.out, "Name:  %s\n", usr.Name)
	fmt.Fprintf(cli.out, "Role:  %s\n", usr.Role)
	if usr.Phone != "" {
		fmt.Fprintf(cli.out, "Phone: %s\n", usr.Phone)
	}
	if usr.Email != "" {
		fmt.Fprintf(cli.out, "Email: %s\n", usr.Email)
	}
	return nil
}

func (cli *commandLine) logout(domain string, all bool) error {
	_, _, mgr := cli.clients(domain)

	ctx := context.Background()
	if all {
		mgr.LogoutAll(ctx)
	} else {
		mgr.Logout(ctx)
	}
	fmt.Fprintln(cli.out, "Logged out")
	return nil
}

func (cli *commandLine) tenant(domain string, refresh bool) error {
	pub, _, _ := cli.clients(domain)
	svc := tenant.NewService(pub, cli.jar, cli.conf)

	meta, err := svc.FetchMeta(context.Background(), refresh)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Name:   %s\n", meta.Name)
	fmt.Fprintf(cli.out, "Domain: %s\n", meta.Domain)
	fmt.Fprintf(cli.out, "Active: %t\n", !meta.Inactive())
	return nil
}

func (cli *commandLine) students(domain, q string, page int) error {
	_, api, _ := cli.clients(domain)
	store := ems.NewStudentStore(api)
	if q != "" {
		store.Query.Set("q", q)
	}
	store.Query.SetPage(page)

	items, err := store.FetchList(context.Background())
	if err != nil {
		return err
	}
	for _, student := range items {
		fmt.Fprintf(cli.out, "%6d  %-30s %s\n", student.ID, student.Name, student.Status)
	}
	fmt.Fprintf(cli.out, "page %d/%d (%d total)\n",
		store.Pagination.Page, store.Pagination.LastPage, store.Pagination.Total)
	return nil
}

func (cli *commandLine) grades(domain, q string) error {
	_, api, _ := cli.clients(domain)
	store := ems.NewGradeStore(api)
	if q != "" {
		store.Query.Set("q", q)
	}

	items, err := store.FetchList(context.Background())
	if err != nil {
		return err
	}
	for _, grade := range items {
		fmt.Fprintf(cli.out, "%6d  %-30s level=%d\n", grade.ID, grade.Name, grade.LevelID)
	}
	return nil
}
