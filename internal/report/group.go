package report

// GroupByStatus 는 상태 표시명의 정확한 일치로 레코드를 버킷에 나눈다.
// 설정된 버킷 키는 비어 있어도 전부 결과에 존재하고,
// 어느 버킷에도 맞지 않는 상태의 레코드는 조용히 빠진다.
func GroupByStatus[T any](records []T, status func(T) string, buckets []string) map[string][]T {
	out := make(map[string][]T, len(buckets))
	for _, b := range buckets {
		out[b] = []T{}
	}
	for _, rec := range records {
		key := status(rec)
		if _, ok := out[key]; !ok {
			continue
		}
		out[key] = append(out[key], rec)
	}
	return out
}
