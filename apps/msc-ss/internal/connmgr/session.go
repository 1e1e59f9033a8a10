package connmgr

import (
	"context"
	"sync"
)

// Session は1リクエスト分のコネクション操作を記録するConnectionManager。
// 実際の送信と解放は、記録内容を受け取った呼び出し元のコネクション管理が行う。
type Session struct {
	mu           sync.Mutex
	messages     [][]byte
	releaseCount int
}

// NewSession は新しいSessionを生成する。
func NewSession() *Session {
	return &Session{}
}

// SendFacility は送信メッセージを記録する。
func (s *Session) SendFacility(_ context.Context, _ *Conn, msg []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, append([]byte(nil), msg...))
	return nil
}

// Release は解放要求を記録する。
func (s *Session) Release(_ context.Context, _ *Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseCount++
	return nil
}

// Messages は記録された送信メッセージを送信順に返す。
func (s *Session) Messages() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]byte, len(s.messages))
	copy(out, s.messages)
	return out
}

// Released は解放が要求されたかどうかを返す。
func (s *Session) Released() bool {
	return s.ReleaseCount() > 0
}

// ReleaseCount は解放要求の回数を返す。
func (s *Session) ReleaseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.releaseCount
}
