package victorops

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const scheduleFixture = `{
	"team": {"name": "Platform", "slug": "platform-ops"},
	"schedules": [
		{
			"policy": {"name": "Primary", "slug": "primary"},
			"schedule": [
				{
					"shiftName": "Day",
					"rolls": [
						{
							"start": "2024-01-01T09:00:00Z",
							"end": "2024-01-01T17:00:00Z",
							"onCallUser": {"username": "alice"}
						}
					]
				}
			],
			"overrides": [
				{
					"start": "2024-01-01T09:00:00Z",
					"end": "2024-01-02T09:00:00Z",
					"origOnCallUser": {"username": "alice"},
					"overrideOnCallUser": {"username": "bob"}
				}
			]
		}
	]
}`

func TestTeamSchedule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/v2/team/platform-ops/oncall/schedule" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("daysForward"); got != "30" {
			t.Fatalf("unexpected daysForward %q", got)
		}
		if got := r.Header.Get("X-VO-Api-Id"); got != "id-123" {
			t.Fatalf("unexpected api id header %q", got)
		}
		if got := r.Header.Get("X-VO-Api-Key"); got != "key-456" {
			t.Fatalf("unexpected api key header %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Fatalf("unexpected accept header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(scheduleFixture))
	}))
	defer srv.Close()

	client, err := New(srv.URL, Creds{APIID: "id-123", APIKey: "key-456"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	resp, err := client.TeamSchedule(context.Background(), "platform-ops", 30)
	if err != nil {
		t.Fatalf("team schedule: %v", err)
	}
	if resp.Team.Name != "Platform" {
		t.Fatalf("unexpected team name %q", resp.Team.Name)
	}
	if len(resp.Schedules) != 1 {
		t.Fatalf("expected 1 policy block, got %d", len(resp.Schedules))
	}
	block := resp.Schedules[0]
	if block.Policy.Name != "Primary" {
		t.Fatalf("unexpected policy name %q", block.Policy.Name)
	}
	if len(block.Schedule) != 1 || block.Schedule[0].ShiftName != "Day" {
		t.Fatalf("unexpected shift schedule %+v", block.Schedule)
	}
	roll := block.Schedule[0].Rolls[0]
	if roll.OnCallUser.Username != "alice" {
		t.Fatalf("unexpected on-call user %q", roll.OnCallUser.Username)
	}
	if len(block.Overrides) != 1 || block.Overrides[0].OverrideOnCallUser.Username != "bob" {
		t.Fatalf("unexpected overrides %+v", block.Overrides)
	}
}

func TestTeamScheduleAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "invalid api key"}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL, Creds{APIID: "id", APIKey: "key"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.TeamSchedule(context.Background(), "platform-ops", 30)
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusForbidden {
		t.Fatalf("unexpected status %d", apiErr.Status)
	}
	if apiErr.Message != "invalid api key" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestTeamScheduleRequiresSlug(t *testing.T) {
	client, err := New("https://api.example.com", Creds{APIID: "id", APIKey: "key"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.TeamSchedule(context.Background(), "  ", 30); err == nil {
		t.Fatal("expected error for empty team slug")
	}
}

func TestUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/user" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"users": [{"username": "alice", "displayName": "Alice A"}]}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL, Creds{APIID: "id", APIKey: "key"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	users, err := client.Users(context.Background())
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if got, _ := users[0]["displayName"].(string); got != "Alice A" {
		t.Fatalf("unexpected display name %q", got)
	}
}

func TestNewRequiresCreds(t *testing.T) {
	if _, err := New("https://api.example.com", Creds{APIID: "id"}); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := New("https://api.example.com", Creds{APIKey: "key"}); err == nil {
		t.Fatal("expected error for missing api id")
	}
}
