package session

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newSessionServer(t *testing.T, secret string) (*httptest.Server, *http.Client) {
	t.Helper()
	e := echo.New()
	e.Use(Middleware(NewStore(secret, time.Hour, false)))

	e.GET("/in", func(c echo.Context) error {
		if err := SignIn(c, c.QueryParam("u")); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
	e.GET("/who", func(c echo.Context) error {
		name, ok := Username(c)
		if !ok {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, name)
	})
	e.GET("/out", func(c echo.Context) error {
		if err := SignOut(c, "bye"); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
	e.GET("/flash", func(c echo.Context) error {
		if err := AddFlash(c, c.QueryParam("m")); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
	e.GET("/flashes", func(c echo.Context) error {
		return c.String(http.StatusOK, strings.Join(Flashes(c), "|"))
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return srv, &http.Client{Jar: jar}
}

func body(t *testing.T, client *http.Client, url string) string {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return string(b)
}

func TestSession_SignInAndOut(t *testing.T) {
	srv, client := newSessionServer(t, "secret")

	if got := body(t, client, srv.URL+"/who"); got != "anonymous" {
		t.Fatalf("expected anonymous, got %q", got)
	}
	body(t, client, srv.URL+"/in?u=alice")
	if got := body(t, client, srv.URL+"/who"); got != "alice" {
		t.Fatalf("expected alice, got %q", got)
	}
	body(t, client, srv.URL+"/out")
	if got := body(t, client, srv.URL+"/who"); got != "anonymous" {
		t.Fatalf("expected anonymous after sign out, got %q", got)
	}
	if got := body(t, client, srv.URL+"/flashes"); got != "bye" {
		t.Fatalf("expected sign-out flash, got %q", got)
	}
}

func TestSession_FlashesAreConsumed(t *testing.T) {
	srv, client := newSessionServer(t, "secret")

	body(t, client, srv.URL+"/flash?m=one")
	body(t, client, srv.URL+"/flash?m=two")
	if got := body(t, client, srv.URL+"/flashes"); got != "one|two" {
		t.Fatalf("unexpected flashes %q", got)
	}
	if got := body(t, client, srv.URL+"/flashes"); got != "" {
		t.Fatalf("expected flashes to be consumed, got %q", got)
	}
}

func TestSession_ForeignSignatureIgnored(t *testing.T) {
	srvA, clientA := newSessionServer(t, "secret-a")
	srvB, _ := newSessionServer(t, "secret-b")

	body(t, clientA, srvA.URL+"/in?u=mallory")
	u, _ := http.NewRequest(http.MethodGet, srvA.URL, nil)
	cookies := clientA.Jar.Cookies(u.URL)
	if len(cookies) == 0 {
		t.Fatalf("expected a session cookie")
	}

	req, _ := http.NewRequest(http.MethodGet, srvB.URL+"/who", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	if string(b) != "anonymous" {
		t.Fatalf("cookie signed with another secret was accepted: %q", b)
	}
}
