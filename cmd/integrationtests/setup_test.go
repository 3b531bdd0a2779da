package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	auction "freight-auction/internal/auctionService"
	award "freight-auction/internal/awardService"
	model "freight-auction/internal/models"
	"freight-auction/internal/notifier"
	"freight-auction/internal/repository"
	"freight-auction/internal/server"
	trigger "freight-auction/internal/triggerService"
)

// SetupTestRouter initializes the router with an in-memory repository
// for integration testing. The repository is returned so tests can seed
// state and drive evaluation cycles directly.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	dispatcher := notifier.NewDispatcher(repo)

	auctionSvc := auction.NewAuctionService(repo, dispatcher)
	awardSvc := award.NewAwardService(repo, dispatcher)
	triggerSvc := trigger.NewTriggerService(repo)

	router := server.SetupRouter(auctionSvc, awardSvc, triggerSvc)
	return router, repo
}

// SetupTestRouterWithAuctions initializes the router and seeds auctions.
func SetupTestRouterWithAuctions(auctions ...model.Auction) (*gin.Engine, *repository.MemoryRepo) {
	router, repo := SetupTestRouter()
	for _, a := range auctions {
		if err := repo.CreateAuction(a); err != nil {
			panic(err)
		}
	}
	return router, repo
}

// OpenAuction builds an auction whose bidding window opened minutesAgo
// minutes before now.
func OpenAuction(bidNumber string, minutesAgo int) model.Auction {
	return model.Auction{
		BidNumber:     bidNumber,
		Stops:         []string{"Dallas, TX", "Atlanta, GA"},
		DistanceMiles: 780,
		Tag:           "TX",
		ReceivedAt:    time.Now().UTC().Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// Data extracts the data envelope field as an object.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no object data field: %v", resp)
	}
	return data
}
