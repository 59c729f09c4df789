//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreFoundation/CoreFoundation.h>
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>

enum {
	WL_ABSENT = 0,
	WL_INT,
	WL_FLOAT,
	WL_STRING,
	WL_BOOL,
	WL_OTHER,
};

typedef struct {
	int kind;
	long long i;
	double f;
	char *s;
} wl_value;

static const void *wl_copy_all(void) {
	return CGWindowListCopyWindowInfo(kCGWindowListOptionAll, kCGNullWindowID);
}

static long wl_count(const void *list) {
	return (long)CFArrayGetCount((CFArrayRef)list);
}

static int wl_is_dict(const void *list, long idx) {
	CFTypeRef item = CFArrayGetValueAtIndex((CFArrayRef)list, (CFIndex)idx);
	return item != NULL && CFGetTypeID(item) == CFDictionaryGetTypeID();
}

// The returned string, if any, is malloc'd and owned by the caller.
static wl_value wl_lookup(const void *list, long idx, const char *key) {
	wl_value out = {0};
	CFDictionaryRef dict = (CFDictionaryRef)CFArrayGetValueAtIndex((CFArrayRef)list, (CFIndex)idx);

	CFStringRef cfKey = CFStringCreateWithCString(NULL, key, kCFStringEncodingUTF8);
	if (cfKey == NULL) {
		return out;
	}
	CFTypeRef v = CFDictionaryGetValue(dict, cfKey);
	CFRelease(cfKey);
	if (v == NULL) {
		return out;
	}

	CFTypeID t = CFGetTypeID(v);
	if (t == CFNumberGetTypeID()) {
		CFNumberRef n = (CFNumberRef)v;
		if (CFNumberIsFloatType(n)) {
			if (CFNumberGetValue(n, kCFNumberDoubleType, &out.f)) {
				out.kind = WL_FLOAT;
			} else {
				out.kind = WL_OTHER;
			}
		} else if (CFNumberGetValue(n, kCFNumberSInt64Type, &out.i)) {
			out.kind = WL_INT;
		} else {
			out.kind = WL_OTHER;
		}
	} else if (t == CFStringGetTypeID()) {
		CFStringRef s = (CFStringRef)v;
		CFIndex max = CFStringGetMaximumSizeForEncoding(CFStringGetLength(s), kCFStringEncodingUTF8) + 1;
		char *buf = malloc((size_t)max);
		if (buf != NULL && CFStringGetCString(s, buf, max, kCFStringEncodingUTF8)) {
			out.kind = WL_STRING;
			out.s = buf;
		} else {
			free(buf);
			out.kind = WL_OTHER;
		}
	} else if (t == CFBooleanGetTypeID()) {
		out.kind = WL_BOOL;
		out.i = CFBooleanGetValue((CFBooleanRef)v) ? 1 : 0;
	} else {
		out.kind = WL_OTHER;
	}
	return out;
}

static void wl_release(const void *list) {
	CFRelease((CFTypeRef)list);
}
*/
import "C"
import (
	"unsafe"

	"github.com/mj1618/openwindows/internal/platform"
)

// WindowSource implements platform.WindowSource using CGWindowListCopyWindowInfo.
type WindowSource struct{}

// NewWindowSource creates a new macOS window source.
func NewWindowSource() *WindowSource {
	return &WindowSource{}
}

// CopyWindowInfo queries every window known to the window server
// (kCGWindowListOptionAll) and copies the well-known keys out of each
// info dictionary. The native array is released before returning.
func (s *WindowSource) CopyWindowInfo() ([]platform.Properties, error) {
	list := C.wl_copy_all()
	if list == nil {
		return nil, platform.ErrQueryUnavailable
	}
	defer C.wl_release(list)

	cKeys := make([]*C.char, len(platform.Keys))
	for i, k := range platform.Keys {
		cKeys[i] = C.CString(k)
	}
	defer func() {
		for _, ck := range cKeys {
			C.free(unsafe.Pointer(ck))
		}
	}()

	count := int(C.wl_count(list))
	records := make([]platform.Properties, 0, count)
	for i := 0; i < count; i++ {
		props := platform.Properties{}
		if C.wl_is_dict(list, C.long(i)) != 0 {
			for j, k := range platform.Keys {
				if v, ok := copyValue(C.wl_lookup(list, C.long(i), cKeys[j])); ok {
					props[k] = v
				}
			}
		}
		records = append(records, props)
	}
	return records, nil
}

// copyValue converts a looked-up value to a Go value and frees any C string.
func copyValue(v C.wl_value) (any, bool) {
	switch int(v.kind) {
	case int(C.WL_INT):
		return int64(v.i), true
	case int(C.WL_FLOAT):
		return float64(v.f), true
	case int(C.WL_STRING):
		defer C.free(unsafe.Pointer(v.s))
		return C.GoString(v.s), true
	case int(C.WL_BOOL):
		return v.i != 0, true
	case int(C.WL_OTHER):
		return platform.Unsupported{}, true
	default:
		return nil, false
	}
}
