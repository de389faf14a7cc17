package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/tetrisgame-go/internal/api"
	"github.com/mcoot/tetrisgame-go/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "tgame-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/tgame")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// Create application
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		HubManager:     app.HubManager,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
			app.GameController.Close()
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing

type gameStateResponse struct {
	SessionID    string     `json:"session_id"`
	Board        [][]string `json:"board"`
	CurrentPiece *struct {
		Type     string `json:"type"`
		Rotation int    `json:"rotation"`
		X        int    `json:"x"`
		Y        int    `json:"y"`
	} `json:"current_piece"`
	NextPiece struct {
		Type string `json:"type"`
	} `json:"next_piece"`
	GhostRow     int    `json:"ghost_row"`
	Score        int    `json:"score"`
	Level        int    `json:"level"`
	LinesCleared int    `json:"lines_cleared"`
	Status       string `json:"status"`
}

type inputResponse struct {
	Applied bool              `json:"applied"`
	State   gameStateResponse `json:"state"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_SessionLifecycle(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create a session
	output, err := cli.run("session", "new")
	require.NoError(t, err, "output: %s", output)

	var created gameStateResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.NotEmpty(t, created.SessionID)
	assert.Equal(t, "playing", created.Status)
	assert.Len(t, created.Board, 20)
	require.NotNil(t, created.CurrentPiece)
	id := created.SessionID

	// Get it back
	output, err = cli.run("session", "get", id)
	require.NoError(t, err, "output: %s", output)

	var got gameStateResponse
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	assert.Equal(t, id, got.SessionID)

	// End it
	output, err = cli.run("session", "end", id)
	require.NoError(t, err, "output: %s", output)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Session ended", msg.Message)

	// Verify it is gone
	output, err = cli.run("session", "get", id)
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}

func TestCLI_PlayCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("session", "new")
	require.NoError(t, err, "output: %s", output)
	var created gameStateResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	id := created.SessionID
	startX := created.CurrentPiece.X

	// Move left
	output, err = cli.run("play", "move", id, "left")
	require.NoError(t, err, "output: %s", output)
	var moved inputResponse
	require.NoError(t, json.Unmarshal([]byte(output), &moved))
	assert.True(t, moved.Applied)
	assert.Equal(t, startX-1, moved.State.CurrentPiece.X)

	// Rotate (the O piece refuses, any other applies)
	output, err = cli.run("play", "rotate", id, "cw")
	require.NoError(t, err, "output: %s", output)
	var rotated inputResponse
	require.NoError(t, json.Unmarshal([]byte(output), &rotated))
	if rotated.State.CurrentPiece.Type == "O" {
		assert.False(t, rotated.Applied)
	} else {
		assert.True(t, rotated.Applied)
		assert.Equal(t, 1, rotated.State.CurrentPiece.Rotation)
	}

	// Hard drop locks the piece and scores
	output, err = cli.run("play", "drop", id)
	require.NoError(t, err, "output: %s", output)
	var dropped inputResponse
	require.NoError(t, json.Unmarshal([]byte(output), &dropped))
	assert.True(t, dropped.Applied)
	assert.NotZero(t, dropped.State.Score)

	// Pause and resume
	output, err = cli.run("play", "pause", id)
	require.NoError(t, err, "output: %s", output)
	var paused inputResponse
	require.NoError(t, json.Unmarshal([]byte(output), &paused))
	assert.True(t, paused.Applied)
	assert.Equal(t, "paused", paused.State.Status)

	output, err = cli.run("play", "resume", id)
	require.NoError(t, err, "output: %s", output)
	var resumed inputResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resumed))
	assert.True(t, resumed.Applied)
	assert.Equal(t, "playing", resumed.State.Status)

	// Restart wipes everything
	output, err = cli.run("play", "restart", id)
	require.NoError(t, err, "output: %s", output)
	var restarted inputResponse
	require.NoError(t, json.Unmarshal([]byte(output), &restarted))
	assert.True(t, restarted.Applied)
	assert.Equal(t, 0, restarted.State.Score)
	assert.Equal(t, "playing", restarted.State.Status)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Unknown session
	output, err := cli.run("session", "get", "MISSING")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	// Bad move direction is rejected client-side
	output, err = cli.run("play", "move", "MISSING", "sideways")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "left, right or down")
}
