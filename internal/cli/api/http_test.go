package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TravelRecord/internal/cli/model"
)

func TestClient_CreateOne_SendsCookieAndFields(t *testing.T) {
	var gotCookie, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/add", r.URL.Path)
		if c, err := r.Cookie("auth_token"); err == nil {
			gotCookie = c.Value
		}
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = w.Write([]byte(`{"ok":true,"message":"Data added"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok123")
	body, err := c.CreateOne(context.Background(), model.Record{Title: "Kyoto Trip", Date: "2025-03-15", City: "Kyoto", Country: "Japan"})
	require.NoError(t, err)

	assert.Equal(t, "tok123", gotCookie)
	assert.Contains(t, string(body), "Data added")

	// ровно четыре заполненных поля, note и id отсутствуют
	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(gotBody), &sent))
	assert.Equal(t, map[string]any{
		"title": "Kyoto Trip", "date": "2025-03-15", "city": "Kyoto", "country": "Japan",
	}, sent)
}

func TestClient_CreateMany_ForwardsPayloadVerbatim(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/bulk", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"ok":true,"inserted":1}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	payload := []any{map[string]any{"title": "Tokyo"}}
	_, err := c.CreateMany(context.Background(), payload)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"title":"Tokyo"}]`, string(gotBody))
}

func TestClient_CreateManyFile_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "trips.csv", header.Filename)
		assert.Equal(t, "title\nOslo\n", string(data))
		_, _ = w.Write([]byte(`{"ok":true,"inserted":1}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	body, err := c.CreateManyFile(context.Background(), "trips.csv", []byte("title\nOslo\n"))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"inserted":1`)
}

func TestClient_ListAll(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/all", r.URL.Path)
			_, _ = w.Write([]byte(`[{"id":"a","title":"x"},{"id":"b"}]`))
		}))
		defer srv.Close()

		c := New(srv.URL, "tok")
		recs, err := c.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "a", recs[0].ID)
	})

	t.Run("non-array body treated as empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"ok":false,"error":"Not logged in"}`))
		}))
		defer srv.Close()

		c := New(srv.URL, "")
		recs, err := c.ListAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("transport error surfaces", func(t *testing.T) {
		c := New("http://127.0.0.1:1", "")
		_, err := c.ListAll(context.Background())
		assert.Error(t, err)
	})
}

func TestClient_DeleteMany_Payload(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/delete_many", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"ok":true,"deleted":2}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.DeleteMany(context.Background(), []string{"a", "c"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ids":["a","c"]}`, string(gotBody))
}

func TestClient_LoginCapturesCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login", r.URL.Path)
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "sess42"})
		_, _ = w.Write([]byte(`{"ok":true,"email":"a@b.c"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	token, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "sess42", token)
}

func TestClient_LoginError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error":"Wrong password"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Login(context.Background(), "a@b.c", "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Wrong password")
}

func TestClient_Me(t *testing.T) {
	t.Run("logged in", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":true,"email":"a@b.c"}`))
		}))
		defer srv.Close()

		email, ok, err := New(srv.URL, "tok").Me(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "a@b.c", email)
	})

	t.Run("anonymous", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":false,"email":null}`))
		}))
		defer srv.Close()

		_, ok, err := New(srv.URL, "").Me(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
