package pipeline

import (
	"math/rand/v2"
	"sync"
	"time"
)

const (
	// progressTick は擬似進捗の更新間隔です。
	progressTick = 500 * time.Millisecond
	// progressCeiling 以上には進めません。100% は完了時のみです。
	progressCeiling = 95
)

// ProgressTracker は実処理と連動しない表示用の擬似進捗です。
// 500ms ごとにランダムな増分で単調増加し、95% で頭打ちになります。
type ProgressTracker struct {
	mu      sync.Mutex
	running bool
	percent int
	stop    chan struct{}
}

func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{}
}

// Start は進捗を 0% にリセットして更新ループを開始します。
// すでに実行中なら何もしません。
func (t *ProgressTracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.percent = 0
	t.stop = make(chan struct{})
	go t.loop(t.stop)
}

// Stop は更新ループを止めて進捗を 0% に戻します。
func (t *ProgressTracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	close(t.stop)
	t.stop = nil
	t.running = false
	t.percent = 0
}

// Running は実行中かどうかを返します。
func (t *ProgressTracker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Percent は現在の表示用進捗値を返します。
func (t *ProgressTracker) Percent() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.percent
}

func (t *ProgressTracker) loop(stop chan struct{}) {
	ticker := time.NewTicker(progressTick)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.advance()
		}
	}
}

func (t *ProgressTracker) advance() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.percent += 1 + rand.IntN(5)
	if t.percent > progressCeiling {
		t.percent = progressCeiling
	}
}
