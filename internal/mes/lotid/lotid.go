// Package lotid 는 QR 코드에 담기는 13자리 LOT 번호의 인코딩/디코딩을 담당한다.
//
// 형식: 자재코드(4) + 날짜(YYMMDD, 6) + 제품코드(1) + 순번(2)
// 예: AB12250601G00
package lotid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Length LOT 번호 고정 길이
const Length = 13

// 제품 코드 (Admin 발행 화면의 제품 종류 4종)
const (
	ProductSmartGlass = 'S' // 스마트글라스
	ProductFilm       = 'F' // 접합필름
	ProductPDLC       = 'P' // PDLC원단
	ProductGlass      = 'G' // 일반유리
)

var productNames = map[byte]string{
	ProductSmartGlass: "스마트글라스",
	ProductFilm:       "접합필름",
	ProductPDLC:       "PDLC원단",
	ProductGlass:      "일반유리",
}

// ProductName 제품 코드의 표시 이름. 알 수 없는 코드는 빈 문자열.
func ProductName(code byte) string {
	return productNames[code]
}

// ProductCodeOf 제품 이름 → 코드. 등록되지 않은 이름이면 ok=false.
func ProductCodeOf(name string) (byte, bool) {
	for code, n := range productNames {
		if n == name {
			return code, true
		}
	}
	return 0, false
}

// ParseError LOT 번호 형식 오류. 추적 조회에서는 "미등록 LOT"과
// 동일하게 조회 실패로 처리하고 하드 에러로 올리지 않는다.
type ParseError struct {
	ID     string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid lot no %q: %s", e.ID, e.Reason)
}

// LotID 분해된 LOT 번호
type LotID struct {
	MaterialCode string    // 4자, 대문자, 'X' 패딩
	Date         time.Time // YYMMDD (일 단위)
	ProductCode  byte
	Sequence     int // 0~99
}

// Encode LOT 번호 생성. materialCode 는 4자 미만이면 'X'로 우측 패딩,
// 4자 초과면 잘라낸다. sequence 는 mod 100 으로 감긴다.
func Encode(materialCode string, date time.Time, productCode byte, sequence int) string {
	mat := strings.ToUpper(materialCode)
	if len(mat) > 4 {
		mat = mat[:4]
	}
	for len(mat) < 4 {
		mat += "X"
	}
	seq := sequence % 100
	if seq < 0 {
		seq += 100
	}
	return fmt.Sprintf("%s%s%c%02d", mat, date.Format("060102"), productCode, seq)
}

// String Encode 와 동일한 13자 표현
func (l LotID) String() string {
	return Encode(l.MaterialCode, l.Date, l.ProductCode, l.Sequence)
}

// Decode 13자 LOT 번호를 분해한다. 길이/문자 클래스가 맞지 않으면 *ParseError.
func Decode(id string) (LotID, error) {
	if len(id) != Length {
		return LotID{}, &ParseError{ID: id, Reason: fmt.Sprintf("length %d, want %d", len(id), Length)}
	}

	mat := id[0:4]
	for i := 0; i < len(mat); i++ {
		c := mat[i]
		if !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return LotID{}, &ParseError{ID: id, Reason: "material code must be upper-case alphanumeric"}
		}
	}

	dateStr := id[4:10]
	date, err := time.ParseInLocation("060102", dateStr, time.UTC)
	if err != nil {
		return LotID{}, &ParseError{ID: id, Reason: "invalid date code " + dateStr}
	}

	productCode := id[10]
	if _, ok := productNames[productCode]; !ok {
		return LotID{}, &ParseError{ID: id, Reason: fmt.Sprintf("unknown product code %q", productCode)}
	}

	seq, err := strconv.Atoi(id[11:13])
	if err != nil {
		return LotID{}, &ParseError{ID: id, Reason: "sequence must be two digits"}
	}

	return LotID{
		MaterialCode: mat,
		Date:         date,
		ProductCode:  productCode,
		Sequence:     seq,
	}, nil
}

// Sequencer 발행 배치 내 순번 발급기. 배치 시작마다 0부터 시작하고
// 100을 넘으면 감긴다. 같은 날 100장 이상을 배치를 나눠 발행하면
// (자재, 날짜, 제품) 조합이 겹칠 수 있는데, 이는 운영상 감수하는
// 알려진 제약으로 여기서 막지 않는다.
type Sequencer struct {
	next int
}

// NewSequencer 배치 시작. 순번 0부터.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Next 다음 순번 (mod 100)
func (s *Sequencer) Next() int {
	n := s.next % 100
	s.next++
	return n
}
