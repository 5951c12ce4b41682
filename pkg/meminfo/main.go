package meminfo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MemInfo holds the two figures the memory block shows.
type MemInfo struct {
	Available uint64 // bytes
	SwapFree  uint64 // bytes
}

// Read samples /proc/meminfo.
func Read() (MemInfo, error) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return MemInfo{}, err
	}
	defer f.Close()

	return parse(f)
}

func parse(r io.Reader) (MemInfo, error) {
	var info MemInfo
	var haveMem, haveSwap bool

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}

		// values in /proc/meminfo are kB
		switch fields[0] {
		case "MemAvailable:":
			info.Available = kb * 1024
			haveMem = true
		case "SwapFree:":
			info.SwapFree = kb * 1024
			haveSwap = true
		}
		if haveMem && haveSwap {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return info, err
	}
	if !haveMem {
		return info, fmt.Errorf("MemAvailable not present")
	}
	return info, nil
}
