// SPDX-License-Identifier: MIT

package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MikeHopcroft/PrixFixe-sub000/cart"
)

const keySep = ":"

// ParseKey splits a key into its PID and attribute coordinates.
func ParseKey(key cart.Key) (cart.PID, []int, error) {
	if key == "" {
		return 0, nil, fmt.Errorf("%w: empty", ErrMalformedKey)
	}
	parts := strings.Split(string(key), keySep)
	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid < 0 {
		return 0, nil, fmt.Errorf("%w %q: bad pid", ErrMalformedKey, key)
	}
	coords := make([]int, len(parts)-1)
	for i, p := range parts[1:] {
		c, err := strconv.Atoi(p)
		if err != nil || c < 0 {
			return 0, nil, fmt.Errorf("%w %q: bad coordinate %d", ErrMalformedKey, key, i)
		}
		coords[i] = c
	}
	return cart.PID(pid), coords, nil
}

// FormatKey builds the key for pid configured at coords.
func FormatKey(pid cart.PID, coords []int) cart.Key {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(pid)))
	for _, c := range coords {
		b.WriteString(keySep)
		b.WriteString(strconv.Itoa(c))
	}
	return cart.Key(b.String())
}
