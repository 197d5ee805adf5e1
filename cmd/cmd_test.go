package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	t.Cleanup(func() {
		renderOut, renderContent, renderFAQ, renderTestimonial = "", "", -1, 0
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRender_Stdout(t *testing.T) {
	t.Setenv("CHECKOUT_URL", "https://checkout.example.com/x")
	t.Setenv("REVEAL_ANIMATIONS", "false")

	out, err := run(t, "render", "--faq", "1", "--depoimento", "2")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `href="https://checkout.example.com/x"`)
	assert.Contains(t, out, `data-active="2"`)
	assert.NotContains(t, out, `data-reveal="entry"`)
}

func TestRender_File(t *testing.T) {
	t.Setenv("CHECKOUT_URL", "")
	path := filepath.Join(t.TempDir(), "index.html")

	_, err := run(t, "render", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `data-reveal="entry"`)
	assert.Contains(t, string(data), "https://pay.kiwify.com.br/f31mMob")
}

func TestRender_InvalidCheckoutURL(t *testing.T) {
	t.Setenv("CHECKOUT_URL", "http://insecure.example.com")

	_, err := run(t, "render")
	assert.ErrorContains(t, err, "CHECKOUT_URL")
}

func TestRender_ContentFile(t *testing.T) {
	t.Setenv("CHECKOUT_URL", "")
	path := filepath.Join(t.TempDir(), "landing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("meta: {}\n"), 0o644))

	_, err := run(t, "render", "--content", path)
	assert.Error(t, err)
}
