package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ogarmar/Compa/internal/infra/live"
	"github.com/ogarmar/Compa/internal/infra/pending"
	mockRepo "github.com/ogarmar/Compa/internal/mocks/repository"
	mockSvc "github.com/ogarmar/Compa/internal/mocks/service"
	"github.com/ogarmar/Compa/internal/usecase"
)

// newDiscardLogger returns a logger whose output goes nowhere, keeping test
// output readable.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// pairingServiceFixtures holds all test dependencies for pairing service tests.
type pairingServiceFixtures struct {
	service    usecase.PairingUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	connRepo   *mockRepo.MockConnectionRepository
	registry   *live.Registry
	pending    *pending.Table
	codeSvc    *mockSvc.MockCodeService
	qrSvc      *mockSvc.MockQRCodeService
	notifier   *mockSvc.MockAccountNotifier
	publisher  *mockSvc.MockEventPublisher
}

func createTestPairingService(t *testing.T) pairingServiceFixtures {
	return createTestPairingServiceWithTTL(t, 5*time.Minute)
}

// createTestPairingServiceWithTTL lets expiry tests pick a short pending
// request window.
func createTestPairingServiceWithTTL(t *testing.T, ttl time.Duration) pairingServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	connRepo := mockRepo.NewMockConnectionRepository(t)
	registry := live.NewRegistry()
	pendingTable := pending.NewTable(ttl)
	codeSvc := mockSvc.NewMockCodeService(t)
	qrSvc := mockSvc.NewMockQRCodeService(t)
	notifier := mockSvc.NewMockAccountNotifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewPairingService(
		deviceRepo,
		connRepo,
		registry,
		pendingTable,
		codeSvc,
		qrSvc,
		notifier,
		publisher,
		newDiscardLogger(),
	)

	return pairingServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
		connRepo:   connRepo,
		registry:   registry,
		pending:    pendingTable,
		codeSvc:    codeSvc,
		qrSvc:      qrSvc,
		notifier:   notifier,
		publisher:  publisher,
	}
}

// relayServiceFixtures holds all test dependencies for relay service tests.
type relayServiceFixtures struct {
	service     usecase.RelayUsecase
	messageRepo *mockRepo.MockMessageRepository
	connRepo    *mockRepo.MockConnectionRepository
	deviceRepo  *mockRepo.MockDeviceRepository
	registry    *live.Registry
	pushSvc     *mockSvc.MockPushService
	publisher   *mockSvc.MockEventPublisher
}

func createTestRelayService(t *testing.T) relayServiceFixtures {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	connRepo := mockRepo.NewMockConnectionRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	registry := live.NewRegistry()
	pushSvc := mockSvc.NewMockPushService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewRelayService(
		messageRepo,
		connRepo,
		deviceRepo,
		registry,
		pushSvc,
		publisher,
		newDiscardLogger(),
	)

	return relayServiceFixtures{
		service:     service,
		messageRepo: messageRepo,
		connRepo:    connRepo,
		deviceRepo:  deviceRepo,
		registry:    registry,
		pushSvc:     pushSvc,
		publisher:   publisher,
	}
}
