package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/curvecheck/internal/config"
	"github.com/andyballingall/curvecheck/internal/curve"
)

const validIndex = `{
  "indexType": "IborIndex",
  "tenor": "6M",
  "dayCounter": "Actual360",
  "currency": "CLP",
  "fixingDays": 0,
  "calendar": "NullCalendar",
  "endOfMonth": false,
  "convention": "Unadjusted"
}`

// oisWithoutCalendar is an OIS rate helper with every key but calendar.
const oisWithoutCalendar = `helperType: OIS
helperConfig:
  tenor: 1W
  dayCounter: Actual360
  convention: Following
  endOfMonth: true
  frequency: Annual
  settlementDays: 2
  paymentLag: 2
  telescopicValueDates: true
  index: SOFR
  fixedLegFrequency: Semiannual
  fwdStart: 0D
marketConfig:
  spread:
    value: 0.0
`

type MockManager struct {
	mock.Mock
	cfg *config.Config
}

func (m *MockManager) Config() *config.Config {
	if m.cfg == nil {
		return config.Default()
	}
	return m.cfg
}

func (m *MockManager) Validate(ctx context.Context, opts ValidateOptions) error {
	args := m.Called(ctx, opts)
	return args.Error(0)
}

func (m *MockManager) WatchValidation(ctx context.Context, opts ValidateOptions, readyChan chan<- struct{}) error {
	args := m.Called(ctx, opts, readyChan)
	return args.Error(0)
}

func (m *MockManager) RenderSchema(ctx context.Context, class curve.Class, strict bool) ([]byte, error) {
	args := m.Called(ctx, class, strict)
	res, _ := args.Get(0).([]byte)
	return res, args.Error(1)
}

// safeBuffer is a thread-safe wrapper around bytes.Buffer for use in concurrent tests.
type safeBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *safeBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *safeBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func (s *safeBuffer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Reset()
}

// waitFor polls the buffer until it contains want or timeout is reached.
func (s *safeBuffer) waitFor(want string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if bytes.Contains([]byte(s.String()), []byte(want)) {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeFile writes content to name under dir, creating parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}
