// Package safe_close coordinates graceful shutdown of attached goroutines
// Package safe_close 协调附加协程的优雅关闭
package safe_close

import (
	"sync"
)

// SafeClose 关闭协调器
// Attach 注册的每个任务会收到 closeSignal，并在退出前调用 done
type SafeClose struct {
	mu     sync.Mutex
	wg     sync.WaitGroup
	closed chan struct{}
	once   sync.Once
	err    error
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closed: make(chan struct{}),
	}
}

// Attach 注册一个受管理的任务
// f 必须在退出时调用 done，并监听 closeSignal 以便及时退出
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	var once sync.Once
	done := func() {
		once.Do(s.wg.Done)
	}
	go f(done, s.closed)
}

// SendCloseSignal 发出关闭信号
// err 为首次触发关闭的原因，可以为 nil
func (s *SafeClose) SendCloseSignal(err error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.closed)
	})
}

// CloseSignal 返回关闭信号通道
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closed
}

// WaitClosed 阻塞等待所有任务完成，返回触发关闭的错误
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
