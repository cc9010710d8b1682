package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

type fakeDriver struct {
	bodies []string
}

func (d *fakeDriver) ConcurrentFetch(_ context.Context, _ string, suffixes []string) []string {
	return d.bodies
}

type fakeFetcher struct {
	body string
	err  error
}

func (f *fakeFetcher) Get(_ context.Context, _ string) (string, error) {
	return f.body, f.err
}

type fakePingSigner struct{}

func (fakePingSigner) PingURL(method string) string { return "http://fake/" + method }

func TestTimeWindowRendering(t *testing.T) {
	cases := []struct {
		name    string
		req     MatchIDsByQueueRequest
		want    string
		wantErr bool
	}{
		{"all day", MatchIDsByQueueRequest{QueueID: 451, Date: "20190805", Hour: "-1", Minute: ""}, "/451/20190805/-1", false},
		{"hour and minute", MatchIDsByQueueRequest{QueueID: 451, Date: "20190805", Hour: "13", Minute: "30"}, "/451/20190805/13,30", false},
		{"sentinel with minute rejected", MatchIDsByQueueRequest{QueueID: 451, Date: "20190805", Hour: "-1", Minute: "30"}, "", true},
		{"bad hour", MatchIDsByQueueRequest{QueueID: 451, Date: "20190805", Hour: "24", Minute: "00"}, "", true},
		{"bad minute", MatchIDsByQueueRequest{QueueID: 451, Date: "20190805", Hour: "5", Minute: "15"}, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.req.suffix()
			if tc.wantErr {
				if err == nil {
					t.Fatalf("suffix() err = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("suffix() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("suffix() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMatchIDsByQueueValidationRejectsBeforeNetwork(t *testing.T) {
	driver := &fakeDriver{bodies: []string{"should never be read"}}
	c := &Client{Driver: driver}

	_, err := c.MatchIDsByQueue(context.Background(), []MatchIDsByQueueRequest{
		{QueueID: 451, Date: "20190805", Hour: "-1", Minute: "30"},
	})
	if _, ok := err.(ErrInvalidTimeWindow); !ok {
		t.Fatalf("err = %v (%T), want ErrInvalidTimeWindow", err, err)
	}
}

func TestMatchIDsByQueueKeepsActiveFlagN(t *testing.T) {
	body := `[{"ret_msg":null,"Active_Flag":"n","Match":"123"},{"ret_msg":null,"Active_Flag":"y","Match":"456"}]`
	driver := &fakeDriver{bodies: []string{body}}
	c := &Client{Driver: driver}

	ids, err := c.MatchIDsByQueue(context.Background(), []MatchIDsByQueueRequest{
		{QueueID: 451, Date: "20190805", Hour: "-1", Minute: ""},
	})
	if err != nil {
		t.Fatalf("MatchIDsByQueue() error = %v", err)
	}
	if len(ids) != 1 || ids[0] != "123" {
		t.Fatalf("ids = %v, want [123]", ids)
	}
}

func TestMatchIDsByQueueRejectsOnFirstRecordRetMsg(t *testing.T) {
	body := `[{"ret_msg":"bad request","Active_Flag":null,"Match":null}]`
	driver := &fakeDriver{bodies: []string{body}}
	c := &Client{Driver: driver}

	_, err := c.MatchIDsByQueue(context.Background(), []MatchIDsByQueueRequest{
		{QueueID: 451, Date: "20190805", Hour: "-1", Minute: ""},
	})
	if _, ok := err.(ErrProviderRejected); !ok {
		t.Fatalf("err = %v (%T), want ErrProviderRejected", err, err)
	}
}

// TestMatchIDsParseErrorDump covers end-to-end scenario 4.
func TestMatchIDsParseErrorDump(t *testing.T) {
	dir := t.TempDir()
	dumpPath := filepath.Join(dir, "debug_dump.json")

	driver := &fakeDriver{bodies: []string{"not json"}}
	c := &Client{Driver: driver, DebugDumpPath: dumpPath}

	_, err := c.MatchIDsByQueue(context.Background(), []MatchIDsByQueueRequest{
		{QueueID: 451, Date: "20190805", Hour: "-1", Minute: ""},
	})
	if err == nil {
		t.Fatal("MatchIDsByQueue() error = nil, want deserialize error")
	}
	wantSubstr := "Error deserializing get match ids by queue reply"
	if !containsSubstring(err.Error(), wantSubstr) {
		t.Fatalf("err = %q, want substring %q", err.Error(), wantSubstr)
	}

	data, readErr := os.ReadFile(dumpPath)
	if readErr != nil {
		t.Fatalf("reading dump file: %v", readErr)
	}
	if string(data) != "not json" {
		t.Fatalf("dump contents = %q, want %q", data, "not json")
	}
}

func TestMatchDetailsPerChunkSuccessAndError(t *testing.T) {
	goodBody := `[{"GodId":1,"Deaths":2}]`
	badBody := "not json"
	driver := &fakeDriver{bodies: []string{goodBody, badBody}}
	c := &Client{Driver: driver}

	results := c.MatchDetails(context.Background(), []string{"1", "2"})
	var successes, errors int
	for _, r := range results {
		if r.Err != nil {
			errors++
		} else {
			successes++
		}
	}
	if successes != 1 || errors != 1 {
		t.Fatalf("successes=%d errors=%d, want 1/1", successes, errors)
	}
}

func TestGodsParsesCatalogue(t *testing.T) {
	body := `[{"id":1,"Name":"Zeus"},{"id":2,"Name":"Anubis"}]`
	driver := &fakeDriver{bodies: []string{body}}
	c := &Client{Driver: driver}

	gods, err := c.Gods(context.Background())
	if err != nil {
		t.Fatalf("Gods() error = %v", err)
	}
	if len(gods) != 2 || gods[0].Name != "Zeus" {
		t.Fatalf("gods = %+v, want Zeus first", gods)
	}
}

func TestItemsParsesCatalogue(t *testing.T) {
	body := `[{"ItemId":1,"DeviceName":"Sword"}]`
	driver := &fakeDriver{bodies: []string{body}}
	c := &Client{Driver: driver}

	items, err := c.Items(context.Background())
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items) != 1 || items[0].DeviceName != "Sword" {
		t.Fatalf("items = %+v, want Sword", items)
	}
}

func TestPingUsesUnsignedURL(t *testing.T) {
	fetcher := &fakeFetcher{body: "pong"}
	c := &Client{Signer: fakePingSigner{}, Fetcher: fetcher}

	body, err := c.Ping(context.Background())
	if err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if body != "pong" {
		t.Fatalf("body = %q, want pong", body)
	}
}

func containsSubstring(haystack, needle string) bool {
	return len(haystack) >= len(needle) && (func() bool {
		for i := 0; i+len(needle) <= len(haystack); i++ {
			if haystack[i:i+len(needle)] == needle {
				return true
			}
		}
		return false
	})()
}
