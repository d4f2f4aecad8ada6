package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"sabor-autentico/stats-svc/internal/domain"
	"sabor-autentico/stats-svc/internal/mocks"
	"sabor-autentico/stats-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestConsumer_ProcessEvent(t *testing.T) {
	tests := []struct {
		name           string
		inputEvent     domain.SiteEvent
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name:       "order_event",
			inputEvent: domain.SiteEvent{Type: domain.EventOrderStatusChanged, OrderID: "o1", Status: "preparing"},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordEvent", mock.Anything, mock.MatchedBy(func(e domain.SiteEvent) bool {
					return e.OrderID == "o1" && e.Status == "preparing"
				})).Return(nil).Once()
			},
		},
		{
			name:       "store_error_is_logged",
			inputEvent: domain.SiteEvent{Type: domain.EventReviewSubmitted, Rating: 4},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordEvent", mock.Anything, mock.Anything).Return(errors.New("redis error")).Once()
			},
		},
		{
			name:           "unknown_type_is_skipped",
			inputEvent:     domain.SiteEvent{Type: "page_view"},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := service.NewConsumer(nil, mockStore)
			consumer.ProcessEvent(context.Background(), testCase.inputEvent)
		})
	}
}

func TestConsumer_StartReadsUntilCancelled(t *testing.T) {
	reader := mocks.NewMessageReader(t)
	store := mocks.NewStoreInterface(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, _ := json.Marshal(domain.SiteEvent{Type: domain.EventContactReceived, SessionID: "s1"})

	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: payload}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("not json")}, nil).Once()
	reader.On("ReadMessage", mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(kafka.Message{}, context.Canceled).Once()

	store.On("RecordEvent", mock.Anything, mock.MatchedBy(func(e domain.SiteEvent) bool {
		return e.Type == domain.EventContactReceived && e.SessionID == "s1"
	})).Return(nil).Once()

	err := service.NewConsumer(reader, store).Start(ctx)
	assert.NoError(t, err)
}
