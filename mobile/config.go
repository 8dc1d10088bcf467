package mobile

import "github.com/decker502/pointclear/pkg/app"

// AppConfig 返回移动端的启动参数
// 移动端没有命令行与配置文件：使用内置游戏配置，不自动开局，
// 随机源不固定，并保留详细日志输出到 logcat / Xcode 控制台
func AppConfig() app.Config {
	return app.Config{
		Verbose: true,
	}
}
