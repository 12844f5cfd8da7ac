package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseID converte o parâmetro de rota :id. Ids não numéricos falham aqui,
// antes de qualquer chamada ao banco.
func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
