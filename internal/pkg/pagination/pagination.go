// Package pagination режет упорядоченные списки на страницы фиксированного размера.
package pagination

import "strconv"

// PageSize - количество записей на странице
const PageSize = 10

// ParsePage разбирает номер страницы из query-параметра.
// Отсутствующее, нечисловое или неположительное значение даёт 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Offset возвращает индекс первой записи страницы
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}

// Paginate возвращает записи [(page-1)*PageSize, (page-1)*PageSize+PageSize),
// обрезанные по границам списка. Страница за пределами списка даёт пустой срез.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}
	// сравнение через деление, чтобы огромный номер страницы не переполнил смещение
	if page-1 >= (len(items)+PageSize-1)/PageSize {
		return []T{}
	}
	start := Offset(page)
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
