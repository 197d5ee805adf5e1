package content

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefault(t *testing.T) {
	l, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "https://pay.kiwify.com.br/f31mMob", l.CheckoutURL)
	assert.Len(t, l.Pains.Items, 6)
	assert.Len(t, l.Modules.Items, 6)
	assert.Len(t, l.Testimonials.Items, 3)
	assert.Len(t, l.Audience.Items, 5)
	assert.Len(t, l.Comparison.Columns, 3)
	assert.Len(t, l.FAQ.Items, 6)
	assert.Equal(t, int64(3700), l.Offer.PriceCents)

	for i, m := range l.Modules.Items {
		assert.Equal(t, i+1, m.Index, "modules are numbered in order")
	}
	assert.Equal(t, "João P.", l.Testimonials.Items[1].Name)
}

func TestParse_Invalid(t *testing.T) {
	valid, err := os.ReadFile("landing.yaml")
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "http checkout",
			mutate:  func(s string) string { return strings.Replace(s, "https://pay.kiwify", "http://pay.kiwify", 1) },
			wantErr: "absolute https URL",
		},
		{
			name:    "relative checkout",
			mutate:  func(s string) string { return strings.Replace(s, "https://pay.kiwify.com.br/f31mMob", "/checkout", 1) },
			wantErr: "absolute https URL",
		},
		{
			name:    "too many stars",
			mutate:  func(s string) string { return strings.Replace(s, "stars: 5", "stars: 6", 1) },
			wantErr: "stars",
		},
		{
			name:    "unknown key",
			mutate:  func(s string) string { return strings.Replace(s, "checkout_url:", "checkout:", 1) },
			wantErr: "decode landing yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(string(valid))))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_EmptyTestimonials(t *testing.T) {
	l, err := Default()
	require.NoError(t, err)
	l.Testimonials.Items = nil
	assert.ErrorIs(t, l.Validate(), ErrInvalid)
}

func TestWithCheckoutURL(t *testing.T) {
	l, err := Default()
	require.NoError(t, err)

	c, err := l.WithCheckoutURL("https://pay.example.com/abc")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/abc", c.CheckoutURL)
	assert.Equal(t, "https://pay.kiwify.com.br/f31mMob", l.CheckoutURL, "original untouched")

	_, err = l.WithCheckoutURL("ftp://example.com")
	assert.ErrorIs(t, err, ErrInvalid)
}

func writeLanding(t *testing.T, path, title string) {
	t.Helper()
	data, err := os.ReadFile("landing.yaml")
	require.NoError(t, err)
	out := strings.Replace(string(data), `title: "PERGUNTAS FREQUENTES"`, `title: "`+title+`"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))
}

func TestStore_ReloadKeepsOverride(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)
	s := NewStore(def, discard())
	require.NoError(t, s.OverrideCheckoutURL("https://pay.example.com/override"))

	path := filepath.Join(t.TempDir(), "landing.yaml")
	writeLanding(t, path, "DÚVIDAS")
	require.NoError(t, s.Reload(path))

	assert.Equal(t, "DÚVIDAS", s.Current().FAQ.Title)
	assert.Equal(t, "https://pay.example.com/override", s.Current().CheckoutURL)
}

func TestStore_ReloadFailureKeepsPrevious(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)
	s := NewStore(def, discard())

	path := filepath.Join(t.TempDir(), "landing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checkout_url: nope\n"), 0o600))

	assert.Error(t, s.Reload(path))
	assert.Same(t, def, s.Current())
}

func TestStore_Watch(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)
	s := NewStore(def, discard())

	path := filepath.Join(t.TempDir(), "landing.yaml")
	writeLanding(t, path, "PERGUNTAS FREQUENTES")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, path) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	writeLanding(t, path, "DÚVIDAS FREQUENTES")

	assert.Eventually(t, func() bool {
		return s.Current().FAQ.Title == "DÚVIDAS FREQUENTES"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
