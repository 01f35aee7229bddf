package notifier

import "errors"

var ErrHubClosed = errors.New("notifier hub is closed")
