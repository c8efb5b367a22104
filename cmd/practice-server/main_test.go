package main

import "testing"

func TestMigrateCmd_Subcommands(t *testing.T) {
	cmd := migrateCmd()
	want := map[string]bool{"up": false, "status": false, "down": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected migrate subcommand %q", name)
		}
	}
}

func TestMigrateUpCmd_DefaultFlags(t *testing.T) {
	cmd := migrateCmd()
	for _, sub := range cmd.Commands() {
		if sub.Name() != "up" {
			continue
		}
		schema, err := sub.Flags().GetString("schema")
		if err != nil {
			t.Fatalf("schema flag: %v", err)
		}
		if schema != "tenant_default" {
			t.Errorf("expected default schema tenant_default, got %s", schema)
		}
		dir, err := sub.Flags().GetString("dir")
		if err != nil {
			t.Fatalf("dir flag: %v", err)
		}
		if dir != "./migrations" {
			t.Errorf("expected default dir ./migrations, got %s", dir)
		}
		return
	}
	t.Fatal("migrate up subcommand not found")
}

func TestTenantCmd_RequiresName(t *testing.T) {
	cmd := tenantCmd()
	for _, sub := range cmd.Commands() {
		if sub.Name() != "create" {
			continue
		}
		if sub.Flags().Lookup("name") == nil {
			t.Error("expected tenant create to define --name flag")
		}
		return
	}
	t.Fatal("tenant create subcommand not found")
}
