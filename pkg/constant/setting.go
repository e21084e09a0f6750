/*
 * @Description: 站点默认值
 * @Author: blogly-dev
 * @Date: 2026-10-12 10:30:44
 * @LastEditTime: 2026-10-13 09:12:05
 * @LastEditors: blogly-dev
 */
package constant

const (
	// DefaultImageURL 用户未填写头像时使用的占位头像
	DefaultImageURL = "https://www.freeiconspng.com/uploads/icon-user-blue-symbol-people-person-generic--public-domain--21.png"

	// DefaultServerPort 未配置 System.Port 时监听的端口
	DefaultServerPort = "8091"

	// DefaultSQLiteName 未配置 Database.Name 时使用的 SQLite 文件名
	DefaultSQLiteName = "blogly.db"

	// DefaultFormsPerMinute 每个 IP 每分钟允许提交表单的次数
	DefaultFormsPerMinute = 60

	// DefaultFormsBurst 表单提交的突发上限
	DefaultFormsBurst = 20
)
