package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"agora/internal/pkg/ctxutil"
	"agora/internal/pkg/jwt"
)

func newAuthRouter(jwtUtil *jwt.JWT) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(jwtUtil), func(c *gin.Context) {
		user, _ := ctxutil.GetUser(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "role": user.Role})
	})
	r.GET("/admin", Auth(jwtUtil), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	jwtUtil := jwt.NewJWT("test-secret", 15*time.Minute, time.Hour)
	router := newAuthRouter(jwtUtil)

	Convey("Missing Authorization header is rejected", t, func() {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		router.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Malformed Authorization header is rejected", t, func() {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic abc123")
		router.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Invalid token is rejected", t, func() {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		router.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Expired token is rejected", t, func() {
		expired := jwt.NewJWT("test-secret", -time.Minute, time.Hour)
		token, err := expired.GenerateAccessToken("u-1", "alice", "user")
		So(err, ShouldBeNil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Valid token injects the current user", t, func() {
		token, err := jwtUtil.GenerateAccessToken("u-1", "alice", "user")
		So(err, ShouldBeNil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"id":"u-1"`)
		So(w.Body.String(), ShouldContainSubstring, `"role":"user"`)
	})
}

func TestRequireAdmin(t *testing.T) {
	jwtUtil := jwt.NewJWT("test-secret", 15*time.Minute, time.Hour)
	router := newAuthRouter(jwtUtil)

	Convey("Regular user is forbidden", t, func() {
		token, err := jwtUtil.GenerateAccessToken("u-1", "alice", "user")
		So(err, ShouldBeNil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusForbidden)
	})

	Convey("Mod is forbidden", t, func() {
		token, err := jwtUtil.GenerateAccessToken("u-2", "bob", "mod")
		So(err, ShouldBeNil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusForbidden)
	})

	Convey("Admin passes", t, func() {
		token, err := jwtUtil.GenerateAccessToken("u-3", "root", "admin")
		So(err, ShouldBeNil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})
}
