// Package changelog 는 변경 이력 문구 생성과 이력 행 조립을 담당한다.
package changelog

import "fmt"

// Josa 는 단어 끝 글자의 받침 유무로 조사를 고른다.
// 받침 있음 → withFinal("이" 등), 없음 → withoutFinal("가" 등).
// 한글이 아닌 끝 글자(숫자, 영문 등)는 받침 있는 쪽으로 처리한다.
func Josa(word, withFinal, withoutFinal string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return withFinal
	}
	last := runes[len(runes)-1]
	if last < 0xAC00 || last > 0xD7A3 {
		return withFinal
	}
	if (last-0xAC00)%28 == 0 {
		return withoutFinal
	}
	return withFinal
}

// EditMessage — "<모듈> <제목>(<코드>) <위치> <필드>이/가 <전> → <후> 로 수정 되었습니다."
func EditMessage(module, title, code, location, field, before, after string) string {
	return fmt.Sprintf("%s %s(%s) %s %s%s %s → %s 로 수정 되었습니다.",
		module, title, code, location, field, Josa(field, "이", "가"), before, after)
}

// AddMessage — "<모듈> <제목>(<코드>)이/가 <위치>에 추가 되었습니다."
func AddMessage(module, title, code, location string) string {
	subject := fmt.Sprintf("%s(%s)", title, code)
	return fmt.Sprintf("%s %s%s %s에 추가 되었습니다.",
		module, subject, Josa(subject, "이", "가"), location)
}

// DeleteMessage — "<모듈> <제목>(<코드>)이/가 <위치>에서 삭제 되었습니다."
func DeleteMessage(module, title, code, location string) string {
	subject := fmt.Sprintf("%s(%s)", title, code)
	return fmt.Sprintf("%s %s%s %s에서 삭제 되었습니다.",
		module, subject, Josa(subject, "이", "가"), location)
}
