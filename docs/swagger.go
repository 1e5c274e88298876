// Package docs Tour Planner Service API.
//
// Бэкенд мобильного travel-companion: генерация многодневных пеших
// туров по каталогу точек интереса и нормализация мультимодальных
// транспортных маршрутов.
//
// Основные возможности:
// - Генерация плана тура по теме или произвольным тегам
// - Поиск транспортного маршрута с разбором участков и пересадок
// - Ссылки на покупку билетов по перевозчикам
// - История поисков в рамках сессии
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
