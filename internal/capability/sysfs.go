package capability

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	gpioerrors "github.com/gbfwtest/gpiocert/pkg/errors"
)

// DefaultSysfsRoot is the standard location of the sysfs GPIO ABI.
const DefaultSysfsRoot = "/sys/class/gpio"

// DefaultControllerLabel matches the Greybus GPIO controller's chip label.
const DefaultControllerLabel = "greybus_gpio"

// SysfsCapability drives GPIO lines through the Linux sysfs ABI: export and
// unexport files act as activate/deactivate, per-line direction, value and
// edge files carry the attributes.
type SysfsCapability struct {
	root       string
	controller Controller
}

// Discover scans the sysfs root for a gpiochip whose label matches and
// returns a capability bound to it. The chip's base and ngpio files supply
// the run's base pin and line count.
func Discover(root, label string) (*SysfsCapability, error) {
	if root == "" {
		root = DefaultSysfsRoot
	}
	if label == "" {
		label = DefaultControllerLabel
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, gpioerrors.NewCapabilityError("discover", -1, err)
	}

	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "gpiochip") {
			continue
		}

		chipDir := filepath.Join(root, entry.Name())
		chipLabel, err := readTrimmed(filepath.Join(chipDir, "label"))
		if err != nil || chipLabel != label {
			continue
		}

		base, err := readInt(filepath.Join(chipDir, "base"))
		if err != nil {
			return nil, gpioerrors.NewCapabilityError("discover", -1, err)
		}
		count, err := readInt(filepath.Join(chipDir, "ngpio"))
		if err != nil {
			return nil, gpioerrors.NewCapabilityError("discover", -1, err)
		}

		return &SysfsCapability{
			root:       root,
			controller: Controller{Label: label, BasePin: base, Count: count},
		}, nil
	}

	return nil, gpioerrors.NewCapabilityError("discover", -1,
		fmt.Errorf("no gpiochip with label %q under %s", label, root))
}

// Controller returns the discovered controller description.
func (c *SysfsCapability) Controller() Controller {
	return c.controller
}

// LineCount returns the controller's reported line count.
func (c *SysfsCapability) LineCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, gpioerrors.NewCapabilityError("count", -1, err)
	}
	return c.controller.Count, nil
}

// Activate exports the line, reserving it for test use.
func (c *SysfsCapability) Activate(ctx context.Context, line int) error {
	return c.writeControl(ctx, "export", line)
}

// ActivateGroup exports each line in order.
func (c *SysfsCapability) ActivateGroup(ctx context.Context, lines []int) error {
	for _, line := range lines {
		if err := c.Activate(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

// Deactivate unexports the line, releasing it.
func (c *SysfsCapability) Deactivate(ctx context.Context, line int) error {
	return c.writeControl(ctx, "unexport", line)
}

// DeactivateGroup unexports each line in order.
func (c *SysfsCapability) DeactivateGroup(ctx context.Context, lines []int) error {
	for _, line := range lines {
		if err := c.Deactivate(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

// Direction reads the line's direction attribute.
func (c *SysfsCapability) Direction(ctx context.Context, line int) (string, error) {
	return c.readAttr(ctx, line, "direction")
}

// SetDirection writes the line's direction attribute.
func (c *SysfsCapability) SetDirection(ctx context.Context, line int, direction string) error {
	return c.writeAttr(ctx, line, "direction", direction)
}

// Value reads the line's level.
func (c *SysfsCapability) Value(ctx context.Context, line int) (string, error) {
	return c.readAttr(ctx, line, "value")
}

// SetValue writes the line's level.
func (c *SysfsCapability) SetValue(ctx context.Context, line int, value string) error {
	return c.writeAttr(ctx, line, "value", value)
}

// Edge reads the line's trigger type.
func (c *SysfsCapability) Edge(ctx context.Context, line int) (string, error) {
	return c.readAttr(ctx, line, "edge")
}

// SetEdge writes the line's trigger type.
func (c *SysfsCapability) SetEdge(ctx context.Context, line int, edge string) error {
	return c.writeAttr(ctx, line, "edge", edge)
}

func (c *SysfsCapability) writeControl(ctx context.Context, file string, line int) error {
	if err := ctx.Err(); err != nil {
		return gpioerrors.NewCapabilityError(file, line, err)
	}

	path := filepath.Join(c.root, file)
	if err := os.WriteFile(path, []byte(strconv.Itoa(line)), 0o644); err != nil {
		return gpioerrors.NewCapabilityError(file, line, err)
	}
	return nil
}

func (c *SysfsCapability) readAttr(ctx context.Context, line int, attr string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", gpioerrors.NewCapabilityError("get "+attr, line, err)
	}

	value, err := readTrimmed(filepath.Join(c.lineDir(line), attr))
	if err != nil {
		return "", gpioerrors.NewCapabilityError("get "+attr, line, err)
	}
	return value, nil
}

func (c *SysfsCapability) writeAttr(ctx context.Context, line int, attr, value string) error {
	if err := ctx.Err(); err != nil {
		return gpioerrors.NewCapabilityError("set "+attr, line, err)
	}

	path := filepath.Join(c.lineDir(line), attr)
	if err := os.WriteFile(path, []byte(value), 0o644); err != nil {
		return gpioerrors.NewCapabilityError("set "+attr, line, err)
	}
	return nil
}

func (c *SysfsCapability) lineDir(line int) string {
	return filepath.Join(c.root, fmt.Sprintf("gpio%d", line))
}

func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func readInt(path string) (int, error) {
	raw, err := readTrimmed(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(raw)
}
