// Package connmgr はシグナリングコネクションへの送信と解放を抽象化する。
package connmgr

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_connmgr.go -package=mocks

import "context"

// Conn は1本のシグナリングコネクションを表す
type Conn struct {
	ID      string // コネクションID
	IMSI    string // 接続中の加入者IMSI
	TraceID string // 処理単位のトレースID
}

// ConnectionManager はコネクションに対する操作を定義する
type ConnectionManager interface {
	// SendFacility はL3メッセージを送信する
	SendFacility(ctx context.Context, conn *Conn, msg []byte) error
	// Release はコネクションを解放する。複数回呼ばれても安全であること
	Release(ctx context.Context, conn *Conn) error
}
