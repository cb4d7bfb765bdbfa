package records

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTime_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "reference date",
			in:   time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: "0",
		},
		{
			name: "one day later",
			in:   time.Date(2001, time.January, 2, 0, 0, 0, 0, time.UTC),
			want: "86400",
		},
		{
			name: "before reference date",
			in:   time.Date(2000, time.December, 31, 23, 59, 30, 0, time.UTC),
			want: "-30",
		},
		{
			name: "fractional seconds",
			in:   time.Date(2001, time.January, 1, 0, 0, 1, 500_000_000, time.UTC),
			want: "1.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(NewTime(tt.in))
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTime_RoundTrip(t *testing.T) {
	in := NewTime(time.Date(2025, time.June, 14, 16, 30, 12, 123456789, time.FixedZone("CEST", 2*3600)))

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out Time
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip = %v, want %v", out, in)
	}
	if out.Nanosecond() != 123456000 {
		t.Errorf("Nanosecond() = %d, want microsecond precision 123456000", out.Nanosecond())
	}
}

func TestTime_UnmarshalJSON_Invalid(t *testing.T) {
	var out Time
	if err := json.Unmarshal([]byte(`"2025-01-01T00:00:00Z"`), &out); err == nil {
		t.Error("Unmarshal() expected error for string date, got nil")
	}
}

func TestEnum_PersistsLabel(t *testing.T) {
	task := NewTask()
	task.Status = TaskInProgress
	task.Category = TaskClientWork

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	for _, want := range []string{`"status":"In Progress"`, `"category":"Client Work"`, `"priority":"Medium"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Marshal() = %s, want it to contain %s", data, want)
		}
	}
}

func TestEnum_UnknownLabelRejected(t *testing.T) {
	tests := []struct {
		name string
		data string
		dst  any
	}{
		{"task status ordinal", `{"status":1}`, &Task{}},
		{"task status unknown", `{"status":"Doing"}`, &Task{}},
		{"finance payment wrong case", `{"paymentMethod":"bank transfer"}`, &Finance{}},
		{"client source", `{"source":"Billboard"}`, &Client{}},
		{"session lighting", `{"lighting":"Neon"}`, &PhotoSession{}},
		{"portfolio project", `{"projectType":"Client"}`, &Portfolio{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := json.Unmarshal([]byte(tt.data), tt.dst); err == nil {
				t.Errorf("Unmarshal(%s) expected error, got nil", tt.data)
			}
		})
	}
}

func TestEnum_Valid(t *testing.T) {
	if !PaymentBank.Valid() {
		t.Error("PaymentBank.Valid() = false, want true")
	}
	if PaymentMethod("Barter").Valid() {
		t.Error(`PaymentMethod("Barter").Valid() = true, want false`)
	}
	if got := len(PortfolioCategoryValues()); got != 11 {
		t.Errorf("len(PortfolioCategoryValues()) = %d, want 11", got)
	}
	if got := len(ClientSourceValues()); got != 8 {
		t.Errorf("len(ClientSourceValues()) = %d, want 8", got)
	}
	if got := len(TaskCategoryValues()); got != 10 {
		t.Errorf("len(TaskCategoryValues()) = %d, want 10", got)
	}
}

func TestPortfolio_ImageData(t *testing.T) {
	p := NewPortfolio()

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "imageData") {
		t.Errorf("Marshal() without image = %s, want no imageData key", data)
	}
	if strings.Contains(string(data), "clientName") {
		t.Errorf("Marshal() without client = %s, want no clientName key", data)
	}

	p.ImageData = []byte{0xff, 0xd8, 0xff}
	data, err = json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"imageData":"/9j/"`) {
		t.Errorf("Marshal() = %s, want base64 imageData", data)
	}
}

func TestConstructors_Defaults(t *testing.T) {
	p := NewPortfolio()
	if p.ID == uuid.Nil || p.Rating != 5 || p.Category != PortfolioPortrait || p.ProjectType != ProjectPersonal {
		t.Errorf("NewPortfolio() = %+v, unexpected defaults", p)
	}

	s := NewPhotoSession()
	if s.Priority != SessionPriorityMedium || s.Status != SessionIdea || s.EstimatedDuration != 2 ||
		s.IndoorOutdoor != Indoor || s.Lighting != LightingNatural || s.Style != StyleModern || s.ScheduledDate != nil {
		t.Errorf("NewPhotoSession() = %+v, unexpected defaults", s)
	}

	c := NewClient()
	if c.ClientType != ClientTypeIndividual || c.Status != ClientStatusProspect || c.Source != SourceReferral ||
		c.PreferredContact != ContactEmail || c.Rating != 5 || c.IsVIP {
		t.Errorf("NewClient() = %+v, unexpected defaults", c)
	}

	task := NewTask()
	if task.Status != TaskPending || task.EstimatedDuration != 60 || task.ActualDuration != nil || task.DueDate != nil {
		t.Errorf("NewTask() = %+v, unexpected defaults", task)
	}

	f := NewFinance()
	if f.Type != Income || f.Currency != "USD" || f.PaymentMethod != PaymentCash || f.Status != PaymentPending {
		t.Errorf("NewFinance() = %+v, unexpected defaults", f)
	}

	if NewTask().ID == NewTask().ID {
		t.Error("NewTask() returned the same ID twice")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"portfolio", KindPortfolio, false},
		{"photoSessions", KindSessions, false},
		{"sessions", KindSessions, false},
		{"clients", KindClients, false},
		{"tasks", KindTasks, false},
		{"finance", KindFinances, false},
		{"finances", KindFinances, false},
		{"invoices", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if KindSessions.Key() != "photoSessions" || KindSessions.Path() != "sessions" {
		t.Errorf("KindSessions Key/Path = %s/%s", KindSessions.Key(), KindSessions.Path())
	}
}
