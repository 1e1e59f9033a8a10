package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oyaguma3/msc-ss-poc/pkg/apperr"
	"github.com/oyaguma3/msc-ss-poc/pkg/model"
)

const (
	testIMSI1 = "001010000000001"
	testIMSI2 = "001010000000002"
)

func newTestSubscriberStore(t *testing.T) (*ValkeyClient, SubscriberStore) {
	t.Helper()
	_, vc := newTestClient(t)
	return vc, &subscriberStore{vc: vc, now: fixedClock}
}

func TestCreateOrTouchCreates(t *testing.T) {
	_, ss := newTestSubscriberStore(t)
	ctx := context.Background()

	sub, err := ss.CreateOrTouch(ctx, testIMSI1)
	if err != nil {
		t.Fatalf("CreateOrTouch failed: %v", err)
	}
	if sub.ID != 1 {
		t.Errorf("ID = %d, want 1", sub.ID)
	}
	if sub.IMSI != testIMSI1 {
		t.Errorf("IMSI = %q, want %q", sub.IMSI, testIMSI1)
	}
	if sub.HasTMSI() {
		t.Errorf("TMSI = %q, want empty", sub.TMSI)
	}
	if sub.Authorized {
		t.Error("Authorized = true, want false")
	}
	if sub.Created != fixedNow.Unix() || sub.Updated != fixedNow.Unix() {
		t.Errorf("Created/Updated = %d/%d, want %d", sub.Created, sub.Updated, fixedNow.Unix())
	}
}

func TestCreateOrTouchExisting(t *testing.T) {
	vc, _ := newTestSubscriberStore(t)
	ctx := context.Background()

	first := &subscriberStore{vc: vc, now: fixedClock}
	if _, err := first.CreateOrTouch(ctx, testIMSI1); err != nil {
		t.Fatalf("CreateOrTouch failed: %v", err)
	}

	later := fixedNow.Add(time.Minute)
	second := &subscriberStore{vc: vc, now: func() time.Time { return later }}
	sub, err := second.CreateOrTouch(ctx, testIMSI1)
	if err != nil {
		t.Fatalf("CreateOrTouch failed: %v", err)
	}
	if sub.ID != 1 {
		t.Errorf("ID = %d, want 1 (no new record)", sub.ID)
	}
	if sub.Created != fixedNow.Unix() {
		t.Errorf("Created = %d, want %d", sub.Created, fixedNow.Unix())
	}
	if sub.Updated != later.Unix() {
		t.Errorf("Updated = %d, want %d", sub.Updated, later.Unix())
	}

	other, err := second.CreateOrTouch(ctx, testIMSI2)
	if err != nil {
		t.Fatalf("CreateOrTouch failed: %v", err)
	}
	if other.ID != 2 {
		t.Errorf("ID = %d, want 2", other.ID)
	}
}

func TestGetByField(t *testing.T) {
	_, ss := newTestSubscriberStore(t)
	ctx := context.Background()

	sub, err := ss.CreateOrTouch(ctx, testIMSI1)
	if err != nil {
		t.Fatalf("CreateOrTouch failed: %v", err)
	}
	sub.TMSI = "305419896"
	sub.Extension = "1001"
	sub.Name = "alice"
	sub.Authorized = true
	sub.LAC = 1
	if err := ss.Sync(ctx, sub); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	tests := []struct {
		field LookupField
		value string
	}{
		{FieldIMSI, testIMSI1},
		{FieldTMSI, "305419896"},
		{FieldExtension, "1001"},
	}
	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			got, err := ss.Get(ctx, tt.field, tt.value)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got.IMSI != testIMSI1 || got.Extension != "1001" || got.Name != "alice" {
				t.Errorf("Get = %+v", got)
			}
			if !got.Authorized {
				t.Error("Authorized = false, want true")
			}
			if got.LAC != 1 {
				t.Errorf("LAC = %d, want 1", got.LAC)
			}
		})
	}
}

func TestGetNotFound(t *testing.T) {
	_, ss := newTestSubscriberStore(t)
	ctx := context.Background()

	tests := []struct {
		field LookupField
		value string
	}{
		{FieldIMSI, testIMSI1},
		{FieldTMSI, "1"},
		{FieldExtension, "9999"},
		{FieldExtension, ""},
	}
	for _, tt := range tests {
		_, err := ss.Get(ctx, tt.field, tt.value)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%s, %q) error = %v, want ErrNotFound", tt.field, tt.value, err)
		}
	}
}

func TestGetUnknownField(t *testing.T) {
	_, ss := newTestSubscriberStore(t)
	_, err := ss.Get(context.Background(), LookupField("name"), "alice")
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("unknown field must not be reported as ErrNotFound: %v", err)
	}
}

func TestSyncNotFound(t *testing.T) {
	_, ss := newTestSubscriberStore(t)
	err := ss.Sync(context.Background(), &model.Subscriber{IMSI: testIMSI1})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestSyncExtensionConflict(t *testing.T) {
	_, ss := newTestSubscriberStore(t)
	ctx := context.Background()

	a, _ := ss.CreateOrTouch(ctx, testIMSI1)
	b, _ := ss.CreateOrTouch(ctx, testIMSI2)
	a.Extension = "1001"
	if err := ss.Sync(ctx, a); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	b.Extension = "1001"
	err := ss.Sync(ctx, b)
	if !errors.Is(err, ErrExtensionConflict) {
		t.Fatalf("expected ErrExtensionConflict, got: %v", err)
	}
	var conflict *apperr.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got: %T", err)
	}
	if conflict.Field != "extension" || conflict.Value != "1001" {
		t.Errorf("conflict = %+v", conflict)
	}

	got, err := ss.Get(ctx, FieldExtension, "1001")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.IMSI != testIMSI1 {
		t.Errorf("extension owner = %q, want %q", got.IMSI, testIMSI1)
	}
}

func TestSyncReleasesOldIndex(t *testing.T) {
	vc, ss := newTestSubscriberStore(t)
	ctx := context.Background()

	sub, _ := ss.CreateOrTouch(ctx, testIMSI1)
	sub.Extension = "1001"
	if err := ss.Sync(ctx, sub); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	sub.Extension = "1002"
	if err := ss.Sync(ctx, sub); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	n, err := vc.Client().Exists(ctx, extIndexKey("1001")).Result()
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if n != 0 {
		t.Error("old extension index should be released")
	}
	if _, err := ss.Get(ctx, FieldExtension, "1002"); err != nil {
		t.Errorf("Get new extension failed: %v", err)
	}

	other, _ := ss.CreateOrTouch(ctx, testIMSI2)
	other.Extension = "1001"
	if err := ss.Sync(ctx, other); err != nil {
		t.Errorf("released extension should be reusable: %v", err)
	}
}

func TestClaimTMSI(t *testing.T) {
	_, ss := newTestSubscriberStore(t)
	ctx := context.Background()

	a, _ := ss.CreateOrTouch(ctx, testIMSI1)
	b, _ := ss.CreateOrTouch(ctx, testIMSI2)

	if err := ss.ClaimTMSI(ctx, a, "100"); err != nil {
		t.Fatalf("ClaimTMSI failed: %v", err)
	}
	if a.TMSI != "100" {
		t.Errorf("TMSI = %q, want %q", a.TMSI, "100")
	}

	err := ss.ClaimTMSI(ctx, b, "100")
	if !errors.Is(err, ErrTMSIConflict) {
		t.Fatalf("expected ErrTMSIConflict, got: %v", err)
	}
	if b.HasTMSI() {
		t.Errorf("TMSI must stay unset after conflict, got %q", b.TMSI)
	}

	// 自身が保持しているTMSIの再割当は成功する
	if err := ss.ClaimTMSI(ctx, a, "100"); err != nil {
		t.Errorf("re-claim of own TMSI failed: %v", err)
	}

	// 付け替えると旧TMSIは解放される
	if err := ss.ClaimTMSI(ctx, a, "200"); err != nil {
		t.Fatalf("ClaimTMSI failed: %v", err)
	}
	if err := ss.ClaimTMSI(ctx, b, "100"); err != nil {
		t.Errorf("released TMSI should be claimable: %v", err)
	}
	got, err := ss.Get(ctx, FieldTMSI, "200")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.IMSI != testIMSI1 {
		t.Errorf("TMSI 200 owner = %q, want %q", got.IMSI, testIMSI1)
	}
}

func TestClaimTMSIKeepsConcurrentUpdates(t *testing.T) {
	vc, ss := newTestSubscriberStore(t)
	ctx := context.Background()

	stale, _ := ss.CreateOrTouch(ctx, testIMSI1)
	if err := ss.ClaimTMSI(ctx, stale, "500"); err != nil {
		t.Fatalf("ClaimTMSI failed: %v", err)
	}

	// 別経路で内線番号と許可が更新される
	fresh, err := ss.Get(ctx, FieldIMSI, testIMSI1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	fresh.Extension = "12345"
	fresh.Authorized = true
	if err := ss.Sync(ctx, fresh); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	// 古いコピーでTMSIを付け替えても他の属性は残る
	stale.LAC = 42
	if err := ss.ClaimTMSI(ctx, stale, "777"); err != nil {
		t.Fatalf("ClaimTMSI failed: %v", err)
	}

	got, err := ss.Get(ctx, FieldIMSI, testIMSI1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Extension != "12345" {
		t.Errorf("Extension = %q, want %q", got.Extension, "12345")
	}
	if !got.Authorized {
		t.Error("Authorized must survive a TMSI claim")
	}
	if got.TMSI != "777" {
		t.Errorf("TMSI = %q, want %q", got.TMSI, "777")
	}
	if got.LAC != 42 {
		t.Errorf("LAC = %d, want 42", got.LAC)
	}
	if _, err := ss.Get(ctx, FieldExtension, "12345"); err != nil {
		t.Errorf("extension index lost: %v", err)
	}
	n, err := vc.Client().Exists(ctx, tmsiIndexKey("500")).Result()
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if n != 0 {
		t.Error("old TMSI index should be released")
	}
}

func TestClaimTMSIUnknownSubscriber(t *testing.T) {
	_, ss := newTestSubscriberStore(t)
	sub := &model.Subscriber{IMSI: testIMSI1}
	if err := ss.ClaimTMSI(context.Background(), sub, "100"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
	if sub.HasTMSI() {
		t.Errorf("TMSI must stay unset, got %q", sub.TMSI)
	}
}

func TestSubscriberStoreValkeyDown(t *testing.T) {
	mr, vc := newTestClient(t)
	ss := NewSubscriberStore(vc)
	mr.Close()

	ctx := context.Background()
	if _, err := ss.CreateOrTouch(ctx, testIMSI1); !errors.Is(err, ErrValkeyUnavailable) {
		t.Errorf("CreateOrTouch: expected ErrValkeyUnavailable, got: %v", err)
	}
	if _, err := ss.Get(ctx, FieldTMSI, "1"); !errors.Is(err, ErrValkeyUnavailable) {
		t.Errorf("Get: expected ErrValkeyUnavailable, got: %v", err)
	}
	var ve *apperr.ValkeyError
	_, err := ss.Get(ctx, FieldIMSI, testIMSI1)
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValkeyError, got: %T", err)
	}
	if ve.Operation != "HGETALL" {
		t.Errorf("Operation = %q, want HGETALL", ve.Operation)
	}
}
