package platform

import "testing"

func TestSanitizeName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"Tomatick", "tomatick"},
		{"My Timer App", "my-timer-app"},
		{"  Padded  ", "padded"},
		{"", "tomatick"},
	}
	for _, test := range tests {
		if got := sanitizeName(test.in); got != test.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestInstancePortIsStable(t *testing.T) {
	t.Parallel()
	first := instancePort("Tomatick")
	second := instancePort("tomatick")
	if first != second {
		t.Errorf("instancePort differs across case: %d vs %d", first, second)
	}
	if first < 20000 || first > 39999 {
		t.Errorf("instancePort = %d, want within [20000, 39999]", first)
	}
}

func TestInstanceLockExcludesSecondInstance(t *testing.T) {
	t.Parallel()
	lock, err := AcquireInstanceLock("tomatick-test-lock")
	if err != nil {
		t.Fatalf("AcquireInstanceLock: %v", err)
	}
	defer lock.Release()

	if _, err := AcquireInstanceLock("tomatick-test-lock"); err != ErrAlreadyRunning {
		t.Errorf("second acquire: err = %v, want ErrAlreadyRunning", err)
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	relock, err := AcquireInstanceLock("tomatick-test-lock")
	if err != nil {
		t.Errorf("reacquire after release: %v", err)
	}
	if relock != nil {
		relock.Release()
	}
}
