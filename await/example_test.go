package await_test

import (
	"context"
	"fmt"
	"time"

	"github.com/xyhelper/sigq"
	"github.com/xyhelper/sigq/await"
)

// Example showing Receive resolving against a producer on another goroutine.
func Example_receive() {
	q := sigq.New[string]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		q.Push("hello")
	}()
	fmt.Println(await.Receive(q.APop()))
	// Output:
	// hello
}

// Example showing a bounded wait with ReceiveContext.
func Example_receiveContext() {
	q := sigq.New[string]()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := await.ReceiveContext(ctx, q.APop())
	fmt.Println(err)
	// Output:
	// context deadline exceeded
}
