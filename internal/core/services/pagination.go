package services

const defaultPerPage = 10

// pageWindow turns page/per_page query values into a LIMIT/OFFSET pair.
// Out-of-range pages simply land past the result set and yield an empty list.
func pageWindow(page, perPage int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return perPage, (page - 1) * perPage
}
