package logic

import "fmt"

// PageRange computes the 1-based range of repositories shown on a page.
// The last page ends at totalCount to account for a partial final page.
// currentPage is not validated.
func PageRange(currentPage, pageCount, totalCount, pageSize int) (start, end int) {
	start = (currentPage-1)*pageSize + 1
	end = currentPage * pageSize
	if currentPage == pageCount {
		end = totalCount
	}
	return start, end
}

// RangeCaption formats the page range: "25 - 48 out of 50 repositories"
func RangeCaption(currentPage, pageCount, totalCount, pageSize int) string {
	start, end := PageRange(currentPage, pageCount, totalCount, pageSize)
	return fmt.Sprintf("%d - %d out of %d repositories", start, end, totalCount)
}
