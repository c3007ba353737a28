package postgres

import (
	"context"
	"testing"

	"go.uber.org/fx/fxtest"
)

func TestRegisterLifecycleClosesPoolOnStop(t *testing.T) {
	storage, mock := newMockStorage(t)

	lc := fxtest.NewLifecycle(t)
	registerLifecycle(lc, storage)

	if err := lc.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	mock.ExpectClose()
	if err := lc.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
