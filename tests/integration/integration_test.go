package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync"
	"testing"

	"troop_cookies/internal/app"
	"troop_cookies/internal/models"
	"troop_cookies/internal/pkg/logger"
	"troop_cookies/internal/service"
	"troop_cookies/internal/storage"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/suite"
)

var testDatabaseURI string

func init() {
	if err := godotenv.Load("../integration/.env"); err != nil {
		log.Println("No .env file found, using default values")
	}

	testDatabaseURI = os.Getenv("TEST_DATABASE_URI")
}

type IntegrationTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *http.Client
	db     *storage.PostgreSQL
	app    *app.App
}

func (s *IntegrationTestSuite) SetupSuite() {
	if testDatabaseURI == "" {
		s.T().Skip("TEST_DATABASE_URI not set, skipping integration tests")
	}

	l, err := logger.CreateLogger("info")
	s.Require().NoError(err, "Error creating logger")

	s.db, err = storage.NewPostgreSQL(testDatabaseURI, l)
	s.Require().NoError(err, "Error connecting to test database")

	ctx := context.Background()
	s.Require().NoError(s.db.Bootstrap(ctx), "Error applying schema")
	s.Require().NoError(s.db.ResetSystem(ctx), "Error resetting test database")

	s.app = app.NewApp(s.db, l)
	s.Require().NoError(s.app.EnsureSeed(ctx), "Error seeding test database")

	serviceInstance := service.NewService(s.app, "localhost:8080", l)

	s.server = httptest.NewServer(serviceInstance.NewRouter())
	s.client = s.server.Client()
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
}

func (s *IntegrationTestSuite) login(username, pin string) string {
	reqBody, err := json.Marshal(models.AuthRequest{Username: username, PIN: pin})
	s.Require().NoError(err, "Error marshaling authentication request")

	resp, err := s.client.Post(s.server.URL+"/api/auth", "application/json", bytes.NewBuffer(reqBody))
	s.Require().NoError(err, "Error sending authentication request")
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for authentication")

	var authResp models.AuthResponse
	err = json.NewDecoder(resp.Body).Decode(&authResp)
	resp.Body.Close()
	s.Require().NoError(err, "Error decoding authentication response")
	s.Require().NotEmpty(authResp.Token, "Token should not be empty")
	return authResp.Token
}

func (s *IntegrationTestSuite) do(method, path, token string, payload any) (*http.Response, []byte) {
	var body bytes.Buffer
	if payload != nil {
		s.Require().NoError(json.NewEncoder(&body).Encode(payload), "Error marshaling request payload")
	}

	req, err := http.NewRequest(method, s.server.URL+path, &body)
	s.Require().NoError(err, "Error creating request")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	s.Require().NoError(err, "Error executing request")
	defer resp.Body.Close()

	var respBody bytes.Buffer
	_, err = respBody.ReadFrom(resp.Body)
	s.Require().NoError(err, "Error reading response body")
	return resp, respBody.Bytes()
}

// addScout creates a roster entry via the API and returns it with the
// one-time plaintext PIN.
func (s *IntegrationTestSuite) addScout(adminToken, name, level string) models.User {
	resp, body := s.do(http.MethodPost, "/api/users", adminToken, models.AddScoutRequest{Name: name, Level: level})
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for scout creation")

	var scout models.User
	s.Require().NoError(json.Unmarshal(body, &scout), "Error decoding created scout")
	s.Require().NotZero(scout.ID, "Scout id should be assigned")
	s.Require().NotEmpty(scout.PIN, "One-time PIN should be returned")
	return scout
}

func (s *IntegrationTestSuite) remaining(adminToken string, userID int32, cookieType string) int {
	resp, body := s.do(http.MethodGet, "/api/inventory/"+strconv.Itoa(int(userID)), adminToken, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for inventory read")

	var rows []models.InventoryRow
	s.Require().NoError(json.Unmarshal(body, &rows), "Error decoding inventory rows")
	for _, row := range rows {
		if row.CookieType == cookieType {
			return row.Remaining
		}
	}
	s.Require().Failf("missing inventory row", "no row for cookie type %s", cookieType)
	return 0
}

func (s *IntegrationTestSuite) TestSaleAndTransferFlow() {
	adminToken := s.login("troopleader", "changeme")

	alice := s.addScout(adminToken, "Alice Meridian", "Junior")
	bella := s.addScout(adminToken, "Bella Thorncroft", "Junior")
	aliceToken := s.login(alice.Username, alice.PIN)

	// Stock Alice with 10 boxes of Thin Mints.
	resp, _ := s.do(http.MethodPost, "/api/inventory/field", adminToken, models.SetFieldRequest{
		UserID: alice.ID, CookieType: "TMint", Field: models.FieldStarting, Value: 10,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for field write")

	// Move 4 boxes to Bella.
	resp, _ = s.do(http.MethodPost, "/api/transfer", adminToken, models.TransferRequest{
		FromUserID: alice.ID, ToUserID: bella.ID, CookieType: "TMint", Quantity: 4,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for transfer")

	s.Require().Equal(6, s.remaining(adminToken, alice.ID, "TMint"), "Alice should have 6 boxes after the transfer")
	s.Require().Equal(4, s.remaining(adminToken, bella.ID, "TMint"), "Bella should have 4 boxes after the transfer")

	// Alice sells everything she has left.
	resp, _ = s.do(http.MethodPost, "/api/sale", aliceToken, models.SaleRequest{CookieType: "TMint", Quantity: 6})
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for sale")
	s.Require().Equal(0, s.remaining(adminToken, alice.ID, "TMint"), "Alice should have 0 boxes after selling out")

	// One more box must be refused, and the ledger must be untouched.
	resp, _ = s.do(http.MethodPost, "/api/sale", aliceToken, models.SaleRequest{CookieType: "TMint", Quantity: 1})
	s.Require().Equal(http.StatusConflict, resp.StatusCode, "Expected status 409 for overselling")
	s.Require().Equal(0, s.remaining(adminToken, alice.ID, "TMint"), "Refused sale should not change the ledger")

	// Every mutation above left an audit entry.
	resp, body := s.do(http.MethodGet, "/api/logs", adminToken, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for log read")

	var logs []models.InventoryLog
	s.Require().NoError(json.Unmarshal(body, &logs), "Error decoding audit log")

	var aliceEntries, bellaEntries int
	for _, entry := range logs {
		switch entry.UserID {
		case alice.ID:
			aliceEntries++
		case bella.ID:
			bellaEntries++
		}
	}
	// Field write, transfer out, sale: three entries for Alice; transfer in
	// for Bella.
	s.Require().Equal(3, aliceEntries, "Alice should have three audit entries")
	s.Require().Equal(1, bellaEntries, "Bella should have one audit entry")
}

func (s *IntegrationTestSuite) TestTradeSettlement() {
	adminToken := s.login("troopleader", "changeme")

	cora := s.addScout(adminToken, "Cora Valemont", "Brownie")
	dana := s.addScout(adminToken, "Dana Ferndale", "Brownie")
	coraToken := s.login(cora.Username, cora.PIN)
	danaToken := s.login(dana.Username, dana.PIN)

	for _, stock := range []struct {
		userID     int32
		cookieType string
		value      int
	}{
		{cora.ID, "Sam", 10},
		{dana.ID, "Advf", 8},
	} {
		resp, _ := s.do(http.MethodPost, "/api/inventory/field", adminToken, models.SetFieldRequest{
			UserID: stock.userID, CookieType: stock.cookieType, Field: models.FieldStarting, Value: stock.value,
		})
		s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for stocking")
	}

	// Cora offers 3 Samoas for 2 Adventurefuls.
	resp, body := s.do(http.MethodPost, "/api/trades", coraToken, models.CreateTradeRequest{
		ToUserID:   dana.ID,
		Offering:   map[string]int{"Sam": 3},
		Requesting: map[string]int{"Advf": 2},
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for trade proposal")

	var trade models.TradeRequest
	s.Require().NoError(json.Unmarshal(body, &trade), "Error decoding proposed trade")
	s.Require().Equal(models.TradePending, trade.Status, "New trade should be pending")

	// The proposer cannot accept their own trade.
	resp, _ = s.do(http.MethodPost, "/api/trades/"+trade.ID+"/respond", coraToken, models.RespondTradeRequest{Accept: true})
	s.Require().Equal(http.StatusForbidden, resp.StatusCode, "Proposer must not resolve their own trade")

	// Dana accepts; both sides settle atomically.
	resp, body = s.do(http.MethodPost, "/api/trades/"+trade.ID+"/respond", danaToken, models.RespondTradeRequest{Accept: true})
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for acceptance")
	s.Require().NoError(json.Unmarshal(body, &trade), "Error decoding resolved trade")
	s.Require().Equal(models.TradeAccepted, trade.Status, "Trade should be accepted")

	s.Require().Equal(7, s.remaining(adminToken, cora.ID, "Sam"), "Cora gave up 3 Samoas")
	s.Require().Equal(2, s.remaining(adminToken, cora.ID, "Advf"), "Cora received 2 Adventurefuls")
	s.Require().Equal(3, s.remaining(adminToken, dana.ID, "Sam"), "Dana received 3 Samoas")
	s.Require().Equal(6, s.remaining(adminToken, dana.ID, "Advf"), "Dana gave up 2 Adventurefuls")

	// Responding again is a no-op: same status, no second settlement.
	resp, body = s.do(http.MethodPost, "/api/trades/"+trade.ID+"/respond", danaToken, models.RespondTradeRequest{Accept: false})
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for repeated response")
	s.Require().NoError(json.Unmarshal(body, &trade), "Error decoding repeated response")
	s.Require().Equal(models.TradeAccepted, trade.Status, "Resolved trade must stay accepted")
	s.Require().Equal(7, s.remaining(adminToken, cora.ID, "Sam"), "Repeated response must not settle again")
}

func (s *IntegrationTestSuite) TestConcurrentTransfersToFreshScout() {
	adminToken := s.login("troopleader", "changeme")

	gia := s.addScout(adminToken, "Gia Pembrook", "Cadette")
	holly := s.addScout(adminToken, "Holly Ashgrove", "Cadette")
	nora := s.addScout(adminToken, "Nora Winslet", "Cadette")

	for _, sender := range []models.User{gia, holly} {
		resp, _ := s.do(http.MethodPost, "/api/inventory/field", adminToken, models.SetFieldRequest{
			UserID: sender.ID, CookieType: "Tags", Field: models.FieldStarting, Value: 10,
		})
		s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for stocking")
	}

	// Both transfers credit a record Nora does not have yet. Each must see
	// the other's committed credit, not a stale zero.
	var wg sync.WaitGroup
	errs := make(chan error, 2)
	transfer := func(fromUserID int32, quantity int) {
		defer wg.Done()

		body, err := json.Marshal(models.TransferRequest{
			FromUserID: fromUserID, ToUserID: nora.ID, CookieType: "Tags", Quantity: quantity,
		})
		if err != nil {
			errs <- err
			return
		}
		req, err := http.NewRequest(http.MethodPost, s.server.URL+"/api/transfer", bytes.NewReader(body))
		if err != nil {
			errs <- err
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)

		resp, err := s.client.Do(req)
		if err != nil {
			errs <- err
			return
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			errs <- fmt.Errorf("transfer from %d returned status %d", fromUserID, resp.StatusCode)
		}
	}

	wg.Add(2)
	go transfer(gia.ID, 4)
	go transfer(holly.ID, 3)
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err, "Error executing concurrent transfer")
	}

	s.Require().Equal(7, s.remaining(adminToken, nora.ID, "Tags"), "Nora should hold both credits")
	s.Require().Equal(6, s.remaining(adminToken, gia.ID, "Tags"), "Gia gave up 4 boxes")
	s.Require().Equal(7, s.remaining(adminToken, holly.ID, "Tags"), "Holly gave up 3 boxes")
}

func (s *IntegrationTestSuite) TestTradeShortfallLeavesBothPartiesUntouched() {
	adminToken := s.login("troopleader", "changeme")

	gwen := s.addScout(adminToken, "Gwen Larkfield", "Junior")
	hana := s.addScout(adminToken, "Hana Brookmere", "Junior")
	gwenToken := s.login(gwen.Username, gwen.PIN)
	hanaToken := s.login(hana.Username, hana.PIN)

	for _, stock := range []struct {
		userID     int32
		cookieType string
		value      int
	}{
		{gwen.ID, "Sam", 10},
		{hana.ID, "Advf", 8},
	} {
		resp, _ := s.do(http.MethodPost, "/api/inventory/field", adminToken, models.SetFieldRequest{
			UserID: stock.userID, CookieType: stock.cookieType, Field: models.FieldStarting, Value: stock.value,
		})
		s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for stocking")
	}

	// Gwen has the Samoas but none of the Thin Mints she also offers.
	resp, body := s.do(http.MethodPost, "/api/trades", gwenToken, models.CreateTradeRequest{
		ToUserID:   hana.ID,
		Offering:   map[string]int{"Sam": 3, "TMint": 999},
		Requesting: map[string]int{"Advf": 1},
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for trade proposal")

	var trade models.TradeRequest
	s.Require().NoError(json.Unmarshal(body, &trade), "Error decoding proposed trade")

	// Acceptance must fail on the short line and move nothing at all.
	resp, _ = s.do(http.MethodPost, "/api/trades/"+trade.ID+"/respond", hanaToken, models.RespondTradeRequest{Accept: true})
	s.Require().Equal(http.StatusConflict, resp.StatusCode, "Expected status 409 for short settlement")

	s.Require().Equal(10, s.remaining(adminToken, gwen.ID, "Sam"), "Gwen's good line must not settle alone")
	s.Require().Equal(0, s.remaining(adminToken, gwen.ID, "TMint"), "Gwen's short line must not move")
	s.Require().Equal(0, s.remaining(adminToken, gwen.ID, "Advf"), "Gwen must not receive anything")
	s.Require().Equal(8, s.remaining(adminToken, hana.ID, "Advf"), "Hana must keep her Adventurefuls")
	s.Require().Equal(0, s.remaining(adminToken, hana.ID, "Sam"), "Hana must not receive anything")

	// The trade is still pending and can settle later.
	resp, body = s.do(http.MethodGet, "/api/trades", hanaToken, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for trade list")

	var trades []models.TradeRequest
	s.Require().NoError(json.Unmarshal(body, &trades), "Error decoding trade list")
	for _, listed := range trades {
		if listed.ID == trade.ID {
			s.Require().Equal(models.TradePending, listed.Status, "Failed settlement must leave the trade pending")
		}
	}
}

func (s *IntegrationTestSuite) TestTradeRejectionLeavesLedgerUntouched() {
	adminToken := s.login("troopleader", "changeme")

	eve := s.addScout(adminToken, "Evie Marchbanks", "Senior")
	fern := s.addScout(adminToken, "Fern Holloway", "Senior")
	eveToken := s.login(eve.Username, eve.PIN)
	fernToken := s.login(fern.Username, fern.PIN)

	resp, _ := s.do(http.MethodPost, "/api/inventory/field", adminToken, models.SetFieldRequest{
		UserID: eve.ID, CookieType: "Tre", Field: models.FieldStarting, Value: 5,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for stocking")

	resp, body := s.do(http.MethodPost, "/api/trades", eveToken, models.CreateTradeRequest{
		ToUserID: fern.ID,
		Offering: map[string]int{"Tre": 2},
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for trade proposal")

	var trade models.TradeRequest
	s.Require().NoError(json.Unmarshal(body, &trade), "Error decoding proposed trade")

	resp, body = s.do(http.MethodPost, "/api/trades/"+trade.ID+"/respond", fernToken, models.RespondTradeRequest{Accept: false})
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Expected status 200 for rejection")
	s.Require().NoError(json.Unmarshal(body, &trade), "Error decoding rejected trade")
	s.Require().Equal(models.TradeRejected, trade.Status, "Trade should be rejected")

	s.Require().Equal(5, s.remaining(adminToken, eve.ID, "Tre"), "Rejection must not move boxes")
	s.Require().Equal(0, s.remaining(adminToken, fern.ID, "Tre"), "Rejection must not move boxes")
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
