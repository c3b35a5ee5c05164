// Package quran holds the fixed structural index of the standard
// 604-page Madani mushaf: where each surah starts, how many ayat it
// has, and the page boundaries of the 30 ajza and 60 ahzab. The text
// itself never appears here; everything downstream works on numbers
// and verse keys.
package quran

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	SurahCount = 114
	PageCount  = 604
	JuzCount   = 30
	HizbCount  = 60
)

// surahStartPages[i] is the page on which surah i begins (1-based,
// index 0 unused).
var surahStartPages = [SurahCount + 2]int{0,
	1, 2, 50, 77, 106, 128, 151, 177, 187, 208,
	221, 235, 249, 255, 262, 267, 282, 293, 305, 312,
	322, 332, 342, 350, 359, 367, 377, 385, 396, 404,
	411, 415, 418, 428, 434, 440, 446, 453, 458, 467,
	477, 483, 489, 496, 499, 502, 507, 511, 515, 518,
	520, 523, 526, 528, 531, 534, 537, 542, 545, 549,
	551, 553, 554, 556, 558, 560, 562, 564, 566, 568,
	570, 572, 574, 575, 577, 578, 580, 582, 583, 585,
	586, 587, 587, 589, 590, 591, 591, 592, 593, 594,
	595, 595, 596, 596, 597, 597, 598, 598, 599, 599,
	600, 600, 601, 601, 601, 602, 602, 602, 603, 603,
	603, 604, 604, 604,
	// Sentinel one past the last page, so span math needs no special
	// case for surah 114.
	PageCount + 1,
}

// surahAyahCounts[i] is the number of ayat in surah i (Kufan count).
var surahAyahCounts = [SurahCount + 1]int{0,
	7, 286, 200, 176, 120, 165, 206, 75, 129, 109,
	123, 111, 43, 52, 99, 128, 111, 110, 98, 135,
	112, 78, 118, 64, 77, 227, 93, 88, 69, 60,
	34, 30, 73, 54, 45, 83, 182, 88, 75, 85,
	54, 53, 89, 59, 37, 35, 38, 29, 18, 45,
	60, 49, 62, 55, 78, 96, 29, 22, 24, 13,
	14, 11, 11, 18, 12, 12, 30, 52, 52, 44,
	28, 28, 20, 56, 40, 31, 50, 40, 46, 42,
	29, 19, 36, 25, 22, 17, 19, 26, 30, 20,
	15, 21, 11, 8, 8, 19, 5, 8, 8, 11,
	11, 8, 3, 9, 5, 4, 7, 3, 6, 3,
	5, 4, 5, 6,
}

// juzStartPages[j] is the first page of juz j.
var juzStartPages = [JuzCount + 1]int{0,
	1, 22, 42, 62, 82, 102, 121, 142, 162, 182,
	201, 222, 242, 262, 282, 302, 322, 342, 362, 382,
	402, 422, 440, 462, 482, 502, 522, 542, 562, 582,
}

// hizbStartPages[h] is the first page of hizb h. Odd entries line up
// with juz starts; even entries split each juz near its midpoint.
var hizbStartPages = [HizbCount + 1]int{0,
	1, 11, 22, 32, 42, 52, 62, 72, 82, 92,
	102, 112, 121, 132, 142, 152, 162, 172, 182, 192,
	201, 212, 222, 232, 242, 252, 262, 272, 282, 292,
	302, 312, 322, 332, 342, 352, 362, 372, 382, 392,
	402, 412, 422, 432, 440, 450, 462, 472, 482, 492,
	502, 512, 522, 532, 542, 552, 562, 572, 582, 592,
}

// AyahCount returns the number of ayat in the given surah, or 0 for
// an out-of-range surah number.
func AyahCount(surah int) int {
	if surah < 1 || surah > SurahCount {
		return 0
	}
	return surahAyahCounts[surah]
}

// SurahPageSpan returns the first and last mushaf page the surah
// touches. Short surahs that share a page with the next one span a
// single page.
func SurahPageSpan(surah int) (first, last int) {
	if surah < 1 || surah > SurahCount {
		return 0, 0
	}
	first = surahStartPages[surah]
	last = surahStartPages[surah+1] - 1
	if last < first {
		last = first
	}
	return first, last
}

// JuzOfPage returns the juz containing the page (1..30).
func JuzOfPage(page int) int {
	return unitOfPage(page, juzStartPages[1:], JuzCount)
}

// HizbOfPage returns the hizb containing the page (1..60).
func HizbOfPage(page int) int {
	return unitOfPage(page, hizbStartPages[1:], HizbCount)
}

func unitOfPage(page int, starts []int, count int) int {
	if page < 1 {
		return 1
	}
	if page > PageCount {
		return count
	}
	unit := 1
	for i := 1; i < count; i++ {
		if starts[i] > page {
			break
		}
		unit = i + 1
	}
	return unit
}

// JuzPageRange returns the inclusive page range of juz j.
func JuzPageRange(j int) (first, last int) {
	return unitPageRange(j, juzStartPages[:], JuzCount)
}

// HizbPageRange returns the inclusive page range of hizb h.
func HizbPageRange(h int) (first, last int) {
	return unitPageRange(h, hizbStartPages[:], HizbCount)
}

func unitPageRange(n int, starts []int, count int) (int, int) {
	if n < 1 {
		n = 1
	}
	if n > count {
		n = count
	}
	first := starts[n]
	last := PageCount
	if n < count {
		last = starts[n+1] - 1
	}
	return first, last
}

// VerseKey builds the canonical "<surah>:<ayah>" identifier.
func VerseKey(surah, ayah int) string {
	return fmt.Sprintf("%d:%d", surah, ayah)
}

// ParseVerseKey splits a "<surah>:<ayah>" identifier. ok is false for
// anything that is not two positive integers around a colon (page keys
// like "page:12" fall out here).
func ParseVerseKey(key string) (surah, ayah int, ok bool) {
	head, tail, found := strings.Cut(key, ":")
	if !found {
		return 0, 0, false
	}
	surah, err := strconv.Atoi(head)
	if err != nil || surah < 1 {
		return 0, 0, false
	}
	ayah, err = strconv.Atoi(tail)
	if err != nil || ayah < 1 {
		return 0, 0, false
	}
	return surah, ayah, true
}
