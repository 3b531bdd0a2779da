package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"freight-auction/internal/auctionerrors"
	auction "freight-auction/internal/auctionService"
	model "freight-auction/internal/models"
	"freight-auction/services/auction/helpers"
)

func performRequest(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// Test RecordBidHandler
func TestRecordBidHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(mockService *MockAuctionServiceInterface)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{
				BidNumber:   "BN-1",
				CarrierID:   "c1",
				AmountCents: 45000,
			},
			mockSetup: func(mockService *MockAuctionServiceInterface) {
				mockService.EXPECT().
					PlaceBid("BN-1", "c1", int64(45000), "").
					Return(model.Bid{
						BidID:       uuid.NewString(),
						BidNumber:   "BN-1",
						CarrierID:   "c1",
						AmountCents: 45000,
						CreatedAt:   now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				bidID := data["bid_id"].(string)
				require.NotEmpty(t, bidID)
				_, parseErr := uuid.Parse(bidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")
				require.Equal(t, "BN-1", data["bid_number"])
				require.Equal(t, "c1", data["carrier_id"])
				require.Equal(t, float64(45000), data["amount_cents"])
				require.Equal(t, false, data["late"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func(mockService *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_bid_number",
			requestBody: helpers.PlaceBidRequest{
				CarrierID:   "c1",
				AmountCents: 45000,
			},
			mockSetup:      func(mockService *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "non_positive_amount",
			requestBody: helpers.PlaceBidRequest{
				BidNumber:   "BN-1",
				CarrierID:   "c1",
				AmountCents: -5,
			},
			mockSetup:      func(mockService *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "auction_not_found",
			requestBody: helpers.PlaceBidRequest{
				BidNumber:   "missing",
				CarrierID:   "c1",
				AmountCents: 45000,
			},
			mockSetup: func(mockService *MockAuctionServiceInterface) {
				mockService.EXPECT().
					PlaceBid("missing", "c1", int64(45000), "").
					Return(model.Bid{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
		{
			name: "archived_auction",
			requestBody: helpers.PlaceBidRequest{
				BidNumber:   "BN-1",
				CarrierID:   "c1",
				AmountCents: 45000,
			},
			mockSetup: func(mockService *MockAuctionServiceInterface) {
				mockService.EXPECT().
					PlaceBid("BN-1", "c1", int64(45000), "").
					Return(model.Bid{}, auctionerrors.ErrAuctionArchived)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "auction is archived",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockAuctionServiceInterface(ctrl)
			mockAwards := NewMockAwardServiceInterface(ctrl)
			h := NewAuctionHandler(mockService, mockAwards)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.POST("/bids", h.RecordBidHandler)

			tt.mockSetup(mockService)

			resp, w := performRequest(t, router, http.MethodPost, "/bids", tt.requestBody)
			require.Equal(t, tt.expectedStatus, w.Code)
			require.Equal(t, tt.expectedMsg, resp["message"])

			if tt.validateData != nil {
				tt.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test AwardHandler
func TestAwardHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(mockAwards *MockAwardServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			requestBody: helpers.AwardRequest{
				WinnerID:  "c2",
				AwardedBy: "ops",
				Notes:     "best rate",
			},
			mockSetup: func(mockAwards *MockAwardServiceInterface) {
				mockAwards.EXPECT().
					Award("BN-1", "c2", "ops", "best rate").
					Return(model.Award{
						AwardID:     uuid.NewString(),
						BidNumber:   "BN-1",
						WinnerID:    "c2",
						AmountCents: 44000,
						AwardedBy:   "ops",
						AwardedAt:   now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction awarded successfully",
		},
		{
			name:           "missing_winner",
			requestBody:    helpers.AwardRequest{AwardedBy: "ops"},
			mockSetup:      func(mockAwards *MockAwardServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "already_awarded",
			requestBody: helpers.AwardRequest{
				WinnerID:  "c2",
				AwardedBy: "ops",
			},
			mockSetup: func(mockAwards *MockAwardServiceInterface) {
				mockAwards.EXPECT().
					Award("BN-1", "c2", "ops", "").
					Return(model.Award{}, auctionerrors.ErrAlreadyAwarded)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "auction already awarded",
		},
		{
			name: "winner_never_bid",
			requestBody: helpers.AwardRequest{
				WinnerID:  "c9",
				AwardedBy: "ops",
			},
			mockSetup: func(mockAwards *MockAwardServiceInterface) {
				mockAwards.EXPECT().
					Award("BN-1", "c9", "ops", "").
					Return(model.Award{}, auctionerrors.ErrNoSuchBid)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "winner has no bid on this auction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockAuctionServiceInterface(ctrl)
			mockAwards := NewMockAwardServiceInterface(ctrl)
			h := NewAuctionHandler(mockService, mockAwards)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.POST("/auctions/:bid_number/award", h.AwardHandler)

			tt.mockSetup(mockAwards)

			resp, w := performRequest(t, router, http.MethodPost, "/auctions/BN-1/award", tt.requestBody)
			require.Equal(t, tt.expectedStatus, w.Code)
			require.Equal(t, tt.expectedMsg, resp["message"])
		})
	}
}

// Test GetAuctionHandler
func TestGetAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	lowest := int64(45000)
	view := auction.AuctionView{
		BidNumber:         "BN-1",
		Stops:             []string{"Dallas, TX", "Atlanta, GA"},
		DistanceMiles:     780,
		Tag:               "TX",
		ReceivedAt:        now.Add(-5 * time.Minute),
		ExpiresAt:         now.Add(20 * time.Minute),
		TimeLeftSeconds:   1200,
		Status:            model.StatusOpen,
		BidCount:          2,
		LowestAmountCents: &lowest,
	}

	mockService := NewMockAuctionServiceInterface(ctrl)
	mockService.EXPECT().GetAuction("BN-1", "c1").Return(view, nil)

	h := NewAuctionHandler(mockService, NewMockAwardServiceInterface(ctrl))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:bid_number", h.GetAuctionHandler)

	resp, w := performRequest(t, router, http.MethodGet, "/auctions/BN-1?carrier_id=c1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	require.Equal(t, "BN-1", data["bid_number"])
	require.Equal(t, float64(1200), data["time_left_seconds"])
	require.Equal(t, "open", data["status"])
	require.Equal(t, float64(45000), data["lowest_amount_cents"])
}

// Test GetLowestBidHandler
func TestGetLowestBidHandler(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(mockService *MockAuctionServiceInterface)
		expectedStatus int
	}{
		{
			name: "has_lowest",
			mockSetup: func(mockService *MockAuctionServiceInterface) {
				mockService.EXPECT().GetLowestBid("BN-1").Return(model.Bid{
					BidID:       uuid.NewString(),
					BidNumber:   "BN-1",
					CarrierID:   "c2",
					AmountCents: 44000,
					CreatedAt:   time.Now().UTC(),
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "no_bids_yet",
			mockSetup: func(mockService *MockAuctionServiceInterface) {
				mockService.EXPECT().GetLowestBid("BN-1").Return(model.Bid{}, auctionerrors.ErrNoBids)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockAuctionServiceInterface(ctrl)
			h := NewAuctionHandler(mockService, NewMockAwardServiceInterface(ctrl))

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.GET("/auctions/:bid_number/lowest", h.GetLowestBidHandler)

			tt.mockSetup(mockService)

			_, w := performRequest(t, router, http.MethodGet, "/auctions/BN-1/lowest", nil)
			require.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
