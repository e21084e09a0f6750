/*
 * @Description:
 * @Author: blogly-dev
 * @Date: 2026-10-15 20:01:44
 * @LastEditTime: 2026-10-16 22:43:10
 * @LastEditors: blogly-dev
 */
package main

import (
	"context"
	"flag"
	"log"

	"github.com/blogly-dev/blogly/cmd/server"
	"github.com/blogly-dev/blogly/web"
)

func main() {
	// 解析命令行参数
	var seed bool
	flag.BoolVar(&seed, "seed", false, "数据库为空时写入演示用户、文章和标签")
	flag.Parse()

	// 调用位于 cmd/server 包中的 NewApp 函数来构建整个应用
	app, cleanup, err := server.NewApp(web.Templates)
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	// 使用 defer 来确保 cleanup 函数在 main 退出时被调用
	defer cleanup()

	if seed {
		if err := app.SeedDemoData(context.Background()); err != nil {
			log.Fatalf("写入演示数据失败: %v", err)
		}
	}

	app.PrintBanner()

	// 启动应用
	if err := app.Run(); err != nil {
		log.Printf("应用运行失败: %v", err)
	}
}
