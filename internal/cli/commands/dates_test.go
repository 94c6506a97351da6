package commands

import (
	"flag"
	"testing"
	"time"

	"github.com/urfave/cli/v2"
)

func newDateContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("date", "", "")
	set.Bool("today", false, "")
	set.Int("days", 0, "")
	set.Bool("all", false, "")
	if err := set.Parse(args); err != nil {
		t.Fatalf("parse args: %v", err)
	}
	return cli.NewContext(nil, set, nil)
}

func TestResolveDatesDefaultIsToday(t *testing.T) {
	dates, err := resolveDates(newDateContext(t))
	if err != nil {
		t.Fatalf("resolveDates() error = %v", err)
	}
	want := time.Now().Format(dateLayout)
	if len(dates) != 1 || dates[0] != want {
		t.Errorf("dates = %v, want [%s]", dates, want)
	}
}

func TestResolveDatesExplicitDate(t *testing.T) {
	dates, err := resolveDates(newDateContext(t, "-date", "2021-09-04"))
	if err != nil {
		t.Fatalf("resolveDates() error = %v", err)
	}
	if len(dates) != 1 || dates[0] != "2021-09-04" {
		t.Errorf("dates = %v, want [2021-09-04]", dates)
	}
}

func TestResolveDatesInvalidDate(t *testing.T) {
	if _, err := resolveDates(newDateContext(t, "-date", "09/04/2021")); err == nil {
		t.Error("resolveDates() expected error for malformed date")
	}
}

func TestResolveDatesAll(t *testing.T) {
	dates, err := resolveDates(newDateContext(t, "-all"))
	if err != nil {
		t.Fatalf("resolveDates() error = %v", err)
	}
	if len(dates) != 1 || dates[0] != "" {
		t.Errorf("dates = %v, want one empty filter", dates)
	}
}

func TestResolveDatesRange(t *testing.T) {
	dates, err := resolveDates(newDateContext(t, "-days", "3"))
	if err != nil {
		t.Fatalf("resolveDates() error = %v", err)
	}
	if len(dates) != 3 {
		t.Fatalf("got %d dates, want 3", len(dates))
	}
	if dates[2] != time.Now().Format(dateLayout) {
		t.Errorf("range must end today, got %v", dates)
	}
	if dates[0] >= dates[1] || dates[1] >= dates[2] {
		t.Errorf("range not oldest-first: %v", dates)
	}
}

func TestWindowLabel(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  string
	}{
		{"single day", []string{"2021-09-04"}, "2021-09-04"},
		{"no filter", []string{""}, "all records"},
		{"range", []string{"2021-09-02", "2021-09-03", "2021-09-04"}, "2021-09-02 .. 2021-09-04"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := windowLabel(tt.dates); got != tt.want {
				t.Errorf("windowLabel(%v) = %q, want %q", tt.dates, got, tt.want)
			}
		})
	}
}
