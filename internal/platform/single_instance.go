package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceLock holds the single-instance lock: a deterministic localhost
// port derived from the app name. The second instance fails to bind and
// exits.
type InstanceLock struct {
	listener net.Listener
}

// AcquireInstanceLock attempts to take the single-instance lock.
func AcquireInstanceLock(appName string) (*InstanceLock, error) {
	address := fmt.Sprintf("127.0.0.1:%d", instancePort(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &InstanceLock{listener: listener}, nil
}

// Release frees the lock.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	return lock.listener.Close()
}

// instancePort maps the app name onto a stable port in a private range.
func instancePort(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(sanitizeName(appName)))
	return minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
}
