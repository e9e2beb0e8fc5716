package config

import "catalog-service/internal/models"

// CategorySheets maps every catalog category to the published sheet tab it is
// scraped from. All tabs live in one shared spreadsheet document; the gid
// fragment selects the tab. This mapping is static configuration, not runtime
// input.
var CategorySheets = map[models.Category]string{
	models.CategoryCelulares: "https://docs.google.com/spreadsheets/d/e/2PACX-1vQQptMdgB5hIEGG1jx8jw7cfBFz0xt7ZrvfhJ9uRFEwi8VhnCZ7-ebg-izHrPKE6Pwi06_KE-4n5w20/pubhtml#gid=2118976812",
	models.CategoryCamaras:   "https://docs.google.com/spreadsheets/d/e/2PACX-1vQQptMdgB5hIEGG1jx8jw7cfBFz0xt7ZrvfhJ9uRFEwi8VhnCZ7-ebg-izHrPKE6Pwi06_KE-4n5w20/pubhtml#gid=229651643",
	models.CategoryLentes:    "https://docs.google.com/spreadsheets/d/e/2PACX-1vQQptMdgB5hIEGG1jx8jw7cfBFz0xt7ZrvfhJ9uRFEwi8VhnCZ7-ebg-izHrPKE6Pwi06_KE-4n5w20/pubhtml#gid=1356281375",
	models.CategoryTablets:   "https://docs.google.com/spreadsheets/d/e/2PACX-1vQQptMdgB5hIEGG1jx8jw7cfBFz0xt7ZrvfhJ9uRFEwi8VhnCZ7-ebg-izHrPKE6Pwi06_KE-4n5w20/pubhtml#gid=2122100413",
	models.CategoryMacbooks:  "https://docs.google.com/spreadsheets/d/e/2PACX-1vQQptMdgB5hIEGG1jx8jw7cfBFz0xt7ZrvfhJ9uRFEwi8VhnCZ7-ebg-izHrPKE6Pwi06_KE-4n5w20/pubhtml#gid=1232868761",
	models.CategoryNotebooks: "https://docs.google.com/spreadsheets/d/e/2PACX-1vQQptMdgB5hIEGG1jx8jw7cfBFz0xt7ZrvfhJ9uRFEwi8VhnCZ7-ebg-izHrPKE6Pwi06_KE-4n5w20/pubhtml#gid=1820778593",
	models.CategoryVarios:    "https://docs.google.com/spreadsheets/d/e/2PACX-1vQQptMdgB5hIEGG1jx8jw7cfBFz0xt7ZrvfhJ9uRFEwi8VhnCZ7-ebg-izHrPKE6Pwi06_KE-4n5w20/pubhtml#gid=1031525582",
}
