//go:build e2e

package admin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"consultation-booking/internal/domain/availability"
	resdto "consultation-booking/internal/handler/dto/response"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/tests/common/authtest"
	"consultation-booking/tests/common/builder"
	"consultation-booking/tests/common/dbtest"
	commonhttp "consultation-booking/tests/common/httptest"
	"consultation-booking/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	sessionURL  = "/api/admin/session"
	bookingsURL = "/api/admin/bookings"
)

type adminSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.Session)
}

func (s *adminSuite) login() string {
	return authtest.LoginAdmin(s.T(), s.Router, s.Config.Admin.Username, config.TestAdminPassword)
}

func (s *adminSuite) TestSessionLifecycle() {
	s.Run("success: login, session, logout", func() {
		token := s.login()

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, sessionURL, nil, token)
		var sess resdto.SessionResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &sess)
		s.Equal("admin", sess.Username)
		s.InDelta(float64(2*time.Hour/time.Second), float64(sess.RemainingSeconds), 5)

		authtest.LogoutAdmin(s.T(), s.Router, token)

		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, sessionURL, nil, token)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})

	s.Run("error: wrong credentials", func() {
		body := builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) { a.Password = "guess" }).BuildDTO()
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, authtest.LoginURL, body, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid username or password")
	})

	s.Run("error: tokens without a live session are rejected", func() {
		for name, token := range map[string]string{
			"unstored": s.jwt.GenerateUnstoredToken(s.T(), "admin"),
			"expired":  s.jwt.CreateExpiredToken(s.T(), "admin"),
			"forged":   s.jwt.ForgedToken(s.T(), "admin"),
		} {
			w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, sessionURL, nil, token)
			s.Equal(http.StatusUnauthorized, w.Code, name)
		}
	})
}

func (s *adminSuite) TestManageBookings() {
	s.Run("success: list, update, export and delete", func() {
		token := s.login()
		upcoming := builder.NewBookingBuilder()
		past := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.DateTime = time.Now().UTC().Add(-72 * time.Hour).Truncate(30 * time.Minute)
			b.Name = "Grace Hopper"
		})
		upcomingID := dbtest.InsertBooking(s.T(), s.DB, upcoming)
		dbtest.InsertBooking(s.T(), s.DB, past)

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"?window=upcoming", nil, token)
		var list resdto.BookingListResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Require().Len(list.Bookings, 1)
		s.Equal(upcomingID, list.Bookings[0].ID)
		s.Equal(2, list.Stats.Total)
		s.Equal(1, list.Stats.Upcoming)
		s.Equal(1, list.Stats.Past)

		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"?search=grace", nil, token)
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Require().Len(list.Bookings, 1)
		s.Equal("Grace Hopper", list.Bookings[0].ClientName)

		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodPatch, bookingsURL+"/"+upcomingID.String(),
			map[string]any{"meetLink": "https://meet.google.com/zzz-yyyy-xxx", "company": ""}, token)
		var updated resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &updated)
		s.Equal("https://meet.google.com/zzz-yyyy-xxx", updated.MeetLink)
		s.Nil(updated.ClientCompany)

		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/export.csv", nil, token)
		s.Require().Equal(http.StatusOK, w.Code)
		s.Equal(3, strings.Count(strings.TrimSpace(w.Body.String()), "\n")+1, "header plus two rows")

		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodDelete, bookingsURL+"/"+upcomingID.String(), nil, token)
		s.Equal(http.StatusNoContent, w.Code)
		s.Equal(1, dbtest.CountBookings(s.T(), s.DB))

		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/"+upcomingID.String(), nil, token)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("success: slot check sees stored bookings", func() {
		token := s.login()
		la, err := time.LoadLocation(s.Config.Business.TimeZone)
		s.Require().NoError(err)
		day := slices.Collect(availability.Dates(time.Now(), 1, la))[0]
		at, err := availability.At(day, "09:00", la)
		s.Require().NoError(err)

		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.DateTime = at.UTC() })
		dbtest.InsertBooking(s.T(), s.DB, b)
		local := at.In(la)

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
			bookingsURL+"/slot?date="+local.Format("2006-01-02")+"&time="+local.Format("15:04"), nil, token)
		var slot resdto.SlotStatusResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &slot)
		s.True(slot.Taken)
	})
}

func (s *adminSuite) TestStream() {
	s.Run("success: pushes a fresh list after a change", func() {
		token := s.login()

		ctx, cancel := context.WithCancel(context.Background())
		req := httptest.NewRequest(http.MethodGet, bookingsURL+"/stream", nil).WithContext(ctx)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Router.ServeHTTP(rec, req)
		}()

		// let the subscription LISTEN before writing
		time.Sleep(500 * time.Millisecond)
		dbtest.InsertBooking(s.T(), s.DB, builder.NewBookingBuilder())
		time.Sleep(1500 * time.Millisecond)
		cancel()
		wg.Wait()

		body := rec.Body.String()
		s.GreaterOrEqual(strings.Count(body, "event:bookings"), 2, body)
		s.Contains(body, `"total":1`)
	})
}

// schemaSuite runs against a database whose bookings table was dropped.
type schemaSuite struct {
	e2e.SharedSuite
}

func TestSchemaMissingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(schemaSuite))
}

func (s *schemaSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	dbtest.DropBookingsTable(s.T(), s.DB)
}

func (s *schemaSuite) SetupSubTest() {}

func (s *schemaSuite) TestSchemaMissing() {
	token := authtest.LoginAdmin(s.T(), s.Router, s.Config.Admin.Username, config.TestAdminPassword)

	s.Run("error: dashboard answers 503 with the setup SQL", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, token)
		s.Equal(http.StatusServiceUnavailable, w.Code)

		var response struct {
			Detail resdto.SetupResponse `json:"detail"`
		}
		s.Require().NoError(commonhttp.DecodeResponseBody(s.T(), w.Body, &response))
		s.Contains(response.Detail.SQL, `CREATE TABLE "bookings"`)
	})

	s.Run("success: setup SQL recreates the table", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/setup", nil, token)
		var setup resdto.SetupResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &setup)

		_, err := s.DB.Exec(context.Background(), setup.SQL)
		s.Require().NoError(err)

		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, token)
		s.Equal(http.StatusOK, w.Code)
	})
}
