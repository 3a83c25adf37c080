package admincontroller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"

	"github.com/Rahul77977/gagan-server/models"
)

type UserStore interface {
	Users(ctx context.Context) ([]models.User, error)
}

// ExportUsersToExcel streams every user record as an .xlsx download.
func ExportUsersToExcel(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.Users(c.Request.Context())
		if err != nil {
			zap.L().Error("user export failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Users")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "UID", "Name", "Email", "PhoneNumber", "IsAdmin"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, u := range list {
			row := sheet.AddRow()
			row.AddCell().SetValue(u.ID.Hex())
			row.AddCell().SetValue(u.UID)
			row.AddCell().SetValue(u.Name)
			row.AddCell().SetValue(u.Email)
			row.AddCell().SetValue(u.PhoneNumber)
			row.AddCell().SetValue(strconv.FormatBool(u.IsAdmin))
		}

		c.Header("Content-Disposition", "attachment; filename=users.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")

		if err := file.Write(c.Writer); err != nil {
			zap.L().Error("excel write failed", zap.Error(err))
		}
	}
}
