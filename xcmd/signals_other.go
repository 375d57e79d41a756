//go:build !unix

package xcmd

import "os"

func shutdownSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
