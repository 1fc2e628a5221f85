package main

import (
	"bytes"
	"testing"
)

func TestRootCommand(t *testing.T) {
	cmd := rootCmd

	if cmd == nil {
		t.Fatal("Expected root command to be created")
	}

	if cmd.Use != "taxguide" {
		t.Errorf("Expected root command use to be 'taxguide', got %s", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("Expected root command to have a short description")
	}

	if cmd.Long == "" {
		t.Error("Expected root command to have a long description")
	}
}

func TestRootCommand_Execute(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{})

	var buf bytes.Buffer
	cmd.SetOutput(&buf)

	err := cmd.Execute()
	if err != nil {
		t.Errorf("Expected no error for root command execution, got %v", err)
	}

	if buf.String() == "" {
		t.Error("Expected root command to show help/usage")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"calculate": false,
		"validate":  false,
		"chat":      false,
		"version":   false,
	}

	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("Expected subcommand %q to be registered", name)
		}
	}
}

func TestCalculateCommand_Flags(t *testing.T) {
	if calculateCmd.Flags().Lookup("format") == nil {
		t.Error("Expected calculate command to have a format flag")
	}
	if f := calculateCmd.Flags().Lookup("format"); f != nil && f.DefValue != "table" {
		t.Errorf("Expected default format 'table', got %s", f.DefValue)
	}
	if calculateCmd.Flags().Lookup("rules") == nil {
		t.Error("Expected calculate command to have a rules flag")
	}
}

func TestChatCommand_Flags(t *testing.T) {
	for _, name := range []string{"model", "knowledge", "rules", "debug"} {
		if chatCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected chat command to have a %s flag", name)
		}
	}
}
