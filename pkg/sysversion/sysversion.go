package sysversion

import (
	"context"
	"fmt"

	"github.com/fox-one/pkg/property"
)

const (
	SysVersionKey = "sysversion"
)

func ReadSysVersion(ctx context.Context, property property.Store) (int64, error) {
	v, err := property.Get(ctx, SysVersionKey)
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

// Ensure guards a process against data written by a newer release. A
// lower stored version is lifted to target; a higher one aborts startup.
func Ensure(ctx context.Context, store property.Store, target int64) error {
	current, err := ReadSysVersion(ctx, store)
	if err != nil {
		return err
	}

	if current > target {
		return fmt.Errorf("sysversion: data version %d ahead of binary version %d", current, target)
	}

	if current < target {
		return store.Save(ctx, SysVersionKey, target)
	}

	return nil
}
